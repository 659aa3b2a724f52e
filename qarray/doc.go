// Package qarray provides QArray, a dense row-major n-dimensional float64
// array whose elements share a single unit attribute.
//
// The qarray package provides:
//
//   - New and From constructors for zero-filled or pre-populated arrays of
//     any rank, with functional options (WithUnit, WithInfo).
//   - Bounds-checked element access (At, Set) over a flat backing slice
//     indexed through per-axis strides.
//   - Element-wise arithmetic (Add, Sub, MulElem, DivElem, Pow, Scale,
//     Neg, Abs) and comparison (Compare, Equal) with automatic unit
//     conversion and combination.
//   - Unit management (SetUnit, MulUnit, Base) that keeps the attribute
//     purely symbolic: a coefficient k is folded into the numeric payload
//     and divided out of the stored unit.
//
// A zero-coefficient unit cannot be normalized and is rejected with
// ErrZeroUnit. All unit algebra is delegated to the unit package; qarray
// only moves numbers.
//
// See the examples in this package and unit for usage patterns.
package qarray
