// Package unitexpr is your toolkit for defining physical unit systems and
// attaching units to scalar and array-valued quantities — so that the
// expressions you combine stay dimensionally meaningful and self-documenting.
//
// 🚀 What is unitexpr?
//
//	A small, dependency-light library that brings together:
//		• Unit algebra: multiply, divide, exponentiate, scale, add & subtract
//		  unit expressions with full dimensional checking
//		• Unit systems: declare a closed set of base units once, derive the
//		  rest algebraically (newton = kg*m*s**-2)
//		• Quantities: float64 scalars and dense n-dimensional arrays carrying
//		  a unit attribute that normalizes itself on assignment
//		• Ready-made tables: SI and semiconductor unit systems as constants
//		• Declarative definitions: load whole unit systems from HCL files
//
// ✨ Why choose unitexpr?
//
//   - Immutable value types – every operation returns a new expression;
//     share them across goroutines without coordination
//   - Closed systems – expressions from two different unit systems refuse
//     to mix at the operation, not at print time
//   - Explicit errors – sentinel errors, errors.Is friendly, no panics on
//     user input
//   - Readable output – "1.0000011441248464*c" instead of a dimension soup
//
// Everything is organized under six subpackages:
//
//	unit/     — Symbol, System, Expr and Unit: the algebra core
//	quantity/ — a scalar value with a unit attribute
//	qarray/   — a dense row-major n-dimensional array with a unit attribute
//	si/       — the SI unit system (m, s, kg, …) and derived constants
//	sc/       — the semiconductor unit system (nm, ps, m_e, …)
//	hcldef/   — unit systems parsed from declarative HCL documents
//
// Quick taste:
//
//	sys, _ := unit.NewSystem("mks",
//	    unit.Symbol{Symbol: "m", Name: "meter", Quantity: "length"},
//	    unit.Symbol{Symbol: "s", Name: "second", Quantity: "time"},
//	    unit.Symbol{Symbol: "kg", Name: "kilogram", Quantity: "mass"},
//	)
//	m, _ := sys.Base("m")
//	// newton = kg*m*s**-2, declared once, reused everywhere
//
// Dive into the per-package documentation and runnable examples for the
// full API.
//
//	go get github.com/katalvlaran/unitexpr
package unitexpr
