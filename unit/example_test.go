// Package unit_test provides examples demonstrating the unit-expression
// algebra. Each example is runnable via "go test -run Example", showing both
// code and expected output.
package unit_test

import (
	"fmt"

	"github.com/katalvlaran/unitexpr/unit"
)

// ExampleNewSystem demonstrates declaring a unit system and deriving the
// newton from its base units.
func ExampleNewSystem() {
	// 1) Declare the base dimensions of the system.
	sys, err := unit.NewSystem("mks",
		unit.Symbol{Symbol: "m", Name: "meter", Quantity: "length"},
		unit.Symbol{Symbol: "s", Name: "second", Quantity: "time"},
		unit.Symbol{Symbol: "kg", Name: "kilogram", Quantity: "mass"},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Base units are available as named constants of the system.
	m, _ := sys.Base("m")
	s, _ := sys.Base("s")
	kg, _ := sys.Base("kg")

	// 3) Derive N = kg*m*s**-2 with ordinary expression arithmetic.
	f, _ := unit.Mul(kg, m)
	sInv2, _ := unit.Pow(s, -2)
	f, _ = unit.Mul(f, sInv2)
	newton, _ := sys.Define("N", "newton", "force", f)

	// 4) The derived unit stays symbolic until reduced to base form.
	fmt.Println(newton.Expr())
	fmt.Println(newton.BaseForm())
	// Output:
	// kg*m*s**-2.0
	// m*s**-2.0*kg
}

// ExampleScalingFactor demonstrates unit conversion factors between
// proportional expressions.
func ExampleScalingFactor() {
	sys, _ := unit.NewSystem("metric",
		unit.Symbol{Symbol: "m", Name: "meter", Quantity: "length"},
	)
	m, _ := sys.Base("m")

	// cm = m/100
	hundredth, _ := unit.Div(m, sys.Number(100))
	cm, _ := sys.Define("cm", "centimeter", "length", hundredth)

	if f, ok := unit.ScalingFactor(cm, m); ok {
		fmt.Println("1 m =", f, "cm")
	}
	if f, ok := unit.ScalingFactor(m, cm); ok {
		fmt.Println("1 cm =", f, "m")
	}
	// Output:
	// 1 m = 100 cm
	// 1 cm = 0.01 m
}

// ExampleAdd demonstrates that addition preserves the left operand's
// symbolic form while both orders stay numerically equal.
func ExampleAdd() {
	sys, _ := unit.NewSystem("mks",
		unit.Symbol{Symbol: "m", Name: "meter", Quantity: "length"},
		unit.Symbol{Symbol: "s", Name: "second", Quantity: "time"},
	)
	m, _ := sys.Base("m")
	s, _ := sys.Base("s")

	mPerS, _ := unit.Div(m, s)
	cLight, _ := sys.Define("c_light", "speed of light", "velocity", unit.Scale(mPerS, 299792458))
	cSound, _ := sys.Define("c_sound", "speed of sound", "velocity", unit.Scale(mPerS, 343))

	sum1, _ := unit.Add(cLight, cSound)
	sum2, _ := unit.Add(cSound, cLight)

	fmt.Println(sum1)
	fmt.Println(sum2)
	fmt.Println("equal:", unit.Equal(sum1, sum2))
	// Output:
	// 1.0000011441248464*c_light
	// 874031.4897959183*c_sound
	// equal: true
}
