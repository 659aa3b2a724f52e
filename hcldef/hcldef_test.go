package hcldef_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitexpr/hcldef"
	"github.com/katalvlaran/unitexpr/unit"
)

const metricDef = `
system "metric" {
  base "m" {
    name     = "meter"
    quantity = "length"
  }
  base "s" {
    name     = "second"
    quantity = "time"
  }
  base "kg" {
    name     = "kilogram"
    quantity = "mass"
  }

  unit "N" {
    name     = "newton"
    quantity = "force"
    term "kg" { exp = 1 }
    term "m"  { exp = 1 }
    term "s"  { exp = -2 }
  }

  unit "cm" {
    name     = "centimeter"
    quantity = "length"
    factor   = 0.01
    term "m" {}
  }

  unit "omega" {
    name     = "angular frequency"
    quantity = "frequency"
    factor   = 2 * pi
    term "s" { exp = -1 }
  }
}
`

func TestParse_Metric(t *testing.T) {
	systems, err := hcldef.Parse([]byte(metricDef), "metric.hcl")
	require.NoError(t, err)
	require.Len(t, systems, 1)

	sys := systems[0]
	assert.Equal(t, "metric", sys.Name())
	assert.Equal(t, 3, sys.Dim())

	newton, ok := sys.Unit("N")
	require.True(t, ok)
	assert.Equal(t, "kg*m*s**-2.0", newton.Expr().String())
	assert.Equal(t, "newton", newton.Name())
	assert.Equal(t, "force", newton.Quantity())

	// factor folds into the coefficient, exp defaults to 1
	cm, ok := sys.Unit("cm")
	require.True(t, ok)
	assert.Equal(t, 0.01, cm.Expr().Coefficient())
	assert.Equal(t, "0.01*m", cm.Expr().String())

	m, ok := sys.Base("m")
	require.True(t, ok)
	sf, proportional := unit.ScalingFactor(cm, m)
	require.True(t, proportional)
	assert.Equal(t, 100.0, sf)
}

func TestParse_FactorExpression(t *testing.T) {
	systems, err := hcldef.Parse([]byte(metricDef), "metric.hcl")
	require.NoError(t, err)

	omega, ok := systems[0].Unit("omega")
	require.True(t, ok)
	assert.InEpsilon(t, 2*math.Pi, omega.Expr().Coefficient(), 1e-12)
}

func TestParse_ChainedUnits(t *testing.T) {
	src := `
system "metric" {
  base "m" {
    name     = "meter"
    quantity = "length"
  }
  base "s" {
    name     = "second"
    quantity = "time"
  }
  base "kg" {
    name     = "kilogram"
    quantity = "mass"
  }

  unit "N" {
    name     = "newton"
    quantity = "force"
    term "kg" {}
    term "m"  {}
    term "s"  { exp = -2 }
  }

  unit "J" {
    name     = "joule"
    quantity = "energy"
    term "N" {}
    term "m" {}
  }
}
`
	systems, err := hcldef.Parse([]byte(src), "chain.hcl")
	require.NoError(t, err)

	joule, ok := systems[0].Unit("J")
	require.True(t, ok)
	assert.Equal(t, "N*m", joule.Expr().String())
	assert.Equal(t, "m**2.0*s**-2.0*kg", joule.BaseForm().String())
}

func TestParse_UnknownTerm(t *testing.T) {
	src := `
system "metric" {
  base "m" {
    name     = "meter"
    quantity = "length"
  }

  unit "x" {
    name     = "mystery"
    quantity = "unknown"
    term "q" {}
  }
}
`
	_, err := hcldef.Parse([]byte(src), "bad.hcl")
	assert.ErrorIs(t, err, hcldef.ErrUnknownTerm)
}

func TestParse_DuplicateSymbol(t *testing.T) {
	src := `
system "metric" {
  base "m" {
    name     = "meter"
    quantity = "length"
  }

  unit "m" {
    name     = "meter again"
    quantity = "length"
    term "m" {}
  }
}
`
	_, err := hcldef.Parse([]byte(src), "dup.hcl")
	assert.ErrorIs(t, err, unit.ErrDuplicateSymbol)
}

func TestParse_MalformedSource(t *testing.T) {
	_, err := hcldef.Parse([]byte(`system "x" {`), "broken.hcl")
	assert.Error(t, err)
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "metric.hcl"), []byte(metricDef), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	sub := filepath.Join(dir, "more")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "tiny.hcl"), []byte(`
system "tiny" {
  base "u" {
    name     = "unit"
    quantity = "count"
  }
}
`), 0o644))

	systems, err := hcldef.Load(dir)
	require.NoError(t, err)
	require.Len(t, systems, 2)

	names := []string{systems[0].Name(), systems[1].Name()}
	assert.ElementsMatch(t, []string{"metric", "tiny"}, names)
}

func TestLoad_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metric.hcl")
	require.NoError(t, os.WriteFile(path, []byte(metricDef), 0o644))

	systems, err := hcldef.Load(path)
	require.NoError(t, err)
	require.Len(t, systems, 1)
	assert.Equal(t, "metric", systems[0].Name())
}
