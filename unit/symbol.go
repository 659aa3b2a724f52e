package unit

import "regexp"

// symbolPattern is the legality rule for unit symbols: a bare identifier,
// no operators, no leading digit, non-empty.
var symbolPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Symbol describes one base-unit dimension of a unit system.
//
// Symbol is the identifier displayed in unit expressions, Name the unit's
// display name, and Quantity the physical quantity the unit measures.
// Symbols are pure immutable data; behavior lives on System and Expr.
//
//	m := unit.Symbol{Symbol: "m", Name: "meter", Quantity: "length"}
type Symbol struct {
	// Symbol is the identifier rendered in expressions. Must satisfy
	// ValidSymbol and be unique within its system.
	Symbol string

	// Name is the human-readable unit name, e.g. "meter".
	Name string

	// Quantity is the physical quantity measured, e.g. "length".
	Quantity string
}

// ValidSymbol reports whether value is a legal unit symbol.
// Legal symbols match ^[A-Za-z_][A-Za-z0-9_]*$.
func ValidSymbol(value string) bool {
	return symbolPattern.MatchString(value)
}
