// Package unit implements the unit-expression algebra: symbolic physical
// units represented as a numeric coefficient times a product of named unit
// terms raised to real exponents, and the factory that instantiates closed,
// self-consistent unit systems from base-unit descriptors.
//
// The package provides:
//
//   - Symbol — immutable descriptor of one base-unit dimension.
//   - System — a closed unit system built by NewSystem: base units plus a
//     system identity token that every expression carries, so expressions
//     from different systems refuse to interoperate.
//   - Expr — the immutable algebra core, combined through the named pure
//     functions Mul, Div, Pow, Scale, Add, Sub and compared through Equal,
//     ProportionalTo and ScalingFactor.
//   - Unit — a named wrapper around an expression (symbol, name, quantity),
//     declared via System.Define and usable as a term in further arithmetic.
//
// Everything here is an immutable value: operations may run on any number
// of goroutines concurrently without coordination. Failure is always an
// immediate, synchronous sentinel error (see errors.go); the deliberately
// non-exceptional case is ScalingFactor, which answers "not proportional"
// with a false second result instead of an error.
//
//	sys, err := unit.NewSystem("mks",
//	    unit.Symbol{Symbol: "m", Name: "meter", Quantity: "length"},
//	    unit.Symbol{Symbol: "s", Name: "second", Quantity: "time"},
//	    unit.Symbol{Symbol: "kg", Name: "kilogram", Quantity: "mass"},
//	)
//	kg, _ := sys.Base("kg")
//	m, _ := sys.Base("m")
//	sec, _ := sys.Base("s")
//	f, _ := unit.Mul(kg, m)
//	s2, _ := unit.Pow(sec, -2)
//	f, _ = unit.Mul(f, s2)
//	newton, err := sys.Define("N", "newton", "force", f)
//
// See the examples for complete usage patterns.
package unit
