package si_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitexpr/si"
	"github.com/katalvlaran/unitexpr/unit"
)

func TestSystem_BaseUnits(t *testing.T) {
	assert.Equal(t, "si", si.System.Name())
	assert.Equal(t, 7, si.System.Dim())

	for _, u := range []*unit.Unit{si.M, si.S, si.Kg, si.A, si.K, si.Mol, si.Cd} {
		assert.True(t, u.IsBase(), u.Symbol())
		assert.Same(t, si.System, u.System())
	}
}

func TestNewton(t *testing.T) {
	force, err := unit.Mul(si.Kg, si.M)
	require.NoError(t, err)
	perT2, err := unit.Pow(si.S, -2)
	require.NoError(t, err)
	force, err = unit.Mul(force, perT2)
	require.NoError(t, err)

	assert.True(t, unit.Equal(si.N, force))
	assert.Equal(t, "kg*m*s**-2.0", si.N.Expr().String())
	assert.Equal(t, "N", si.N.String())
}

func TestDerivedChain(t *testing.T) {
	// J = N*m, W = J/s, V = W/A, ohm = V/A: all proportional with factor 1.
	joule, err := unit.Mul(si.N, si.M)
	require.NoError(t, err)
	assert.True(t, unit.Equal(si.J, joule))

	watt, err := unit.Div(si.J, si.S)
	require.NoError(t, err)
	assert.True(t, unit.Equal(si.W, watt))

	ohm, err := unit.Div(si.V, si.A)
	require.NoError(t, err)
	assert.True(t, unit.Equal(si.Ohm, ohm))

	conductance, err := unit.Pow(ohm, -1)
	require.NoError(t, err)
	assert.True(t, unit.Equal(si.Siemens, conductance))
}

func TestElectronvolt(t *testing.T) {
	sf, ok := unit.ScalingFactor(si.J, si.EV)
	require.True(t, ok)
	assert.InEpsilon(t, 1.602176634e-19, sf, 1e-12)
}

func TestSpeedOfLight(t *testing.T) {
	mps, err := unit.Div(si.M, si.S)
	require.NoError(t, err)

	sf, ok := unit.ScalingFactor(mps, si.CLight)
	require.True(t, ok)
	assert.Equal(t, 299792458.0, sf)
}

func TestDefiningConstants(t *testing.T) {
	hz, err := unit.Pow(si.S, -1)
	require.NoError(t, err)
	sf, ok := unit.ScalingFactor(hz, si.DeltaNuCs)
	require.True(t, ok)
	assert.Equal(t, 9192631770.0, sf)

	assert.InEpsilon(t, 6.62607015e-34/(2*math.Pi), si.HBar.Expr().BaseCoefficient(), 1e-12)
	assert.InEpsilon(t, 9.1093837015e-31, si.Me.Expr().BaseCoefficient(), 1e-12)
	assert.InEpsilon(t, 6.02214076e23, si.NA.Expr().BaseCoefficient(), 1e-12)
	assert.InEpsilon(t, 1.380649e-23, si.KB.Expr().BaseCoefficient(), 1e-12)
}

func TestSteradian_Dimensionless(t *testing.T) {
	assert.True(t, si.Sr.Expr().Dimensionless())

	// lm = cd/sr reduces to the candela.
	sf, ok := unit.ScalingFactor(si.Cd, si.Lm)
	require.True(t, ok)
	assert.Equal(t, 1.0, sf)
}
