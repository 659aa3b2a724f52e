// Package quantity provides a scalar float64 value with a unit attribute.
//
// The quantity package provides:
//
//   - New with functional options (WithUnit, WithInfo) for constructing
//     dimensioned scalars; the unit is stored in normalized form, any
//     numeric coefficient folded into the value at construction.
//   - Additive arithmetic (Add, Sub) and comparison (Compare, Equal) that
//     convert the right operand into the left operand's unit automatically.
//   - Multiplicative arithmetic (Mul, Div, Pow, Scale, Neg, Abs) combining
//     unit attributes through the core algebra.
//   - Conversion helpers In and Base for re-expressing a quantity in
//     another proportional unit or in base units.
//
// A zero-coefficient unit cannot be normalized and is rejected with
// ErrZeroUnit. Quantities are immutable values; every operation returns a
// new quantity.
package quantity
