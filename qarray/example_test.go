package qarray_test

import (
	"fmt"

	"github.com/katalvlaran/unitexpr/qarray"
	"github.com/katalvlaran/unitexpr/unit"
)

// ExampleFrom builds two length arrays in different units and adds them.
func ExampleFrom() {
	sys, _ := unit.NewSystem("metric",
		unit.Symbol{Symbol: "m", Name: "meter", Quantity: "length"},
	)
	m, _ := sys.Base("m")
	cm, _ := sys.Define("cm", "centimeter", "length", unit.Scale(m, 0.01))

	lengths, _ := qarray.From([]float64{1, 2, 3}, []int{3}, qarray.WithUnit(m))
	offsets, _ := qarray.From([]float64{10, 20, 30}, []int{3}, qarray.WithUnit(cm))

	sum, _ := lengths.Add(offsets)
	fmt.Println(sum)
	fmt.Println(sum.Base())
	// Output:
	// [1.1 2.2 3.3] unit: m
	// [1.1 2.2 3.3] unit: m
}
