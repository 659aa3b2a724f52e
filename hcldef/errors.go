package hcldef

import "errors"

var (
	// ErrUnknownTerm means a unit block references a symbol that is neither
	// a base unit nor a previously declared unit of the same system.
	ErrUnknownTerm = errors.New("hcldef: unknown term symbol")

	// ErrBadFactor means a factor attribute did not evaluate to a number.
	ErrBadFactor = errors.New("hcldef: factor is not a number")
)
