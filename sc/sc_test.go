package sc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitexpr/sc"
	"github.com/katalvlaran/unitexpr/si"
	"github.com/katalvlaran/unitexpr/unit"
)

func TestSystem_BaseUnits(t *testing.T) {
	assert.Equal(t, "sc", sc.System.Name())
	assert.Equal(t, 7, sc.System.Dim())

	for _, u := range []*unit.Unit{sc.Nm, sc.Ps, sc.Me, sc.A, sc.K, sc.Mol, sc.Cd} {
		assert.True(t, u.IsBase(), u.Symbol())
		assert.Same(t, sc.System, u.System())
	}
}

func TestSIBridge(t *testing.T) {
	// 1 m = 1e9 nm, 1 s = 1e12 ps.
	sf, ok := unit.ScalingFactor(sc.Nm, sc.M)
	require.True(t, ok)
	assert.Equal(t, 1e9, sf)

	sf, ok = unit.ScalingFactor(sc.Ps, sc.S)
	require.True(t, ok)
	assert.Equal(t, 1e12, sf)

	// 1 kg is about 1.0978e30 electron masses.
	sf, ok = unit.ScalingFactor(sc.Me, sc.Kg)
	require.True(t, ok)
	assert.InEpsilon(t, 1e31/9.1093837015, sf, 1e-12)
}

func TestNewton_OnScBase(t *testing.T) {
	kgM, kgMErr := unit.Mul(sc.Kg, sc.M)
	force := mustExpr(t, kgM, kgMErr)
	sInv, sInvErr := unit.Pow(sc.S, -2)
	prod, prodErr := unit.Mul(force, mustExpr(t, sInv, sInvErr))
	force = mustExpr(t, prod, prodErr)

	assert.True(t, unit.Equal(sc.N, force))
	// base form is m_e*nm*ps**-2 up to the bridge coefficients
	assert.InEpsilon(t, 1e31/9.1093837015*1e9*1e-24, sc.N.Expr().BaseCoefficient(), 1e-12)
}

func TestCrossSystem_Refused(t *testing.T) {
	_, err := unit.Mul(sc.M, si.M)
	assert.ErrorIs(t, err, unit.ErrSystemMismatch)
	assert.False(t, unit.Equal(sc.N, si.N))
}

func TestElectronvolt(t *testing.T) {
	sf, ok := unit.ScalingFactor(sc.J, sc.EV)
	require.True(t, ok)
	assert.InEpsilon(t, 1.602176634e-19, sf, 1e-12)
}

func mustExpr(t *testing.T, e unit.Expr, err error) unit.Expr {
	t.Helper()
	require.NoError(t, err)

	return e
}
