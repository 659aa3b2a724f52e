package unit_test

import (
	"testing"

	"github.com/katalvlaran/unitexpr/unit"
)

// benchSystem builds a system with a chain of derived units so the reduced
// base forms accumulate through several declarations.
func benchSystem(b *testing.B) (*unit.System, unit.Expr, unit.Expr) {
	b.Helper()

	sys, err := unit.NewSystem("bench",
		unit.Symbol{Symbol: "m", Name: "meter", Quantity: "length"},
		unit.Symbol{Symbol: "s", Name: "second", Quantity: "time"},
		unit.Symbol{Symbol: "kg", Name: "kilogram", Quantity: "mass"},
	)
	if err != nil {
		b.Fatal(err)
	}
	m, _ := sys.Base("m")
	s, _ := sys.Base("s")
	kg, _ := sys.Base("kg")

	f, _ := unit.Mul(kg, m)
	sInv2, _ := unit.Pow(s, -2)
	f, _ = unit.Mul(f, sInv2)
	newton, _ := sys.Define("N", "newton", "force", f)

	j, _ := unit.Mul(newton, m)
	speed, _ := unit.Div(m, s)

	return sys, j, speed
}

func BenchmarkMul(b *testing.B) {
	_, x, y := benchSystem(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := unit.Mul(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPow(b *testing.B) {
	_, x, _ := benchSystem(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := unit.Pow(x, -1.5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEqual(b *testing.B) {
	_, x, _ := benchSystem(b)
	y := unit.Scale(x, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !unit.Equal(x, y) {
			b.Fatal("expected equal")
		}
	}
}

func BenchmarkBaseForm(b *testing.B) {
	_, x, _ := benchSystem(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.BaseForm()
	}
}

func BenchmarkString(b *testing.B) {
	_, x, _ := benchSystem(b)
	e := unit.Scale(x, 2.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.String()
	}
}
