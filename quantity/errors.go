package quantity

import "errors"

var (
	// ErrZeroUnit indicates an attempt to attach a unit with zero magnitude
	// to a quantity; such a unit cannot be normalized away.
	ErrZeroUnit = errors.New("quantity: cannot attach zero-coefficient unit")

	// ErrUnitMismatch indicates additive arithmetic or conversion between
	// quantities whose units are not mutually convertible.
	ErrUnitMismatch = errors.New("quantity: operands have incompatible units")
)
