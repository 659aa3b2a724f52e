// SPDX-License-Identifier: MIT
package qarray

import (
	"fmt"
	"math"

	"github.com/katalvlaran/unitexpr/unit"
)

// sameShape reports whether a and b have identical shapes.
func sameShape(a, b *QArray) error {
	if len(a.shape) != len(b.shape) {
		return fmt.Errorf("shapes %v and %v: %w", a.shape, b.shape, ErrShapeMismatch)
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return fmt.Errorf("shapes %v and %v: %w", a.shape, b.shape, ErrShapeMismatch)
		}
	}

	return nil
}

// converted returns other's payload expressed in a's unit, or an error when
// the units are not inter-convertible. A shared scratch copy is returned
// only when a conversion factor applies; otherwise other's own payload is
// handed back and must not be written to.
func (a *QArray) converted(other *QArray) ([]float64, error) {
	var sf float64
	switch {
	case a.unitless() && other.unitless():
		return other.data, nil
	case a.unitless():
		if !other.u.Dimensionless() {
			return nil, fmt.Errorf("unitless and %s: %w", other.u, ErrUnitMismatch)
		}
		sf = other.u.BaseCoefficient()
	case other.unitless():
		if !a.u.Dimensionless() {
			return nil, fmt.Errorf("%s and unitless: %w", a.u, ErrUnitMismatch)
		}
		sf = 1 / a.u.BaseCoefficient()
	default:
		var ok bool
		if sf, ok = unit.ScalingFactor(a.u, other.u); !ok {
			return nil, fmt.Errorf("%s and %s: %w", a.u, other.u, ErrUnitMismatch)
		}
	}
	if sf == 1 {
		return other.data, nil
	}

	conv := make([]float64, len(other.data))
	for i, v := range other.data {
		conv[i] = v * sf
	}

	return conv, nil
}

// Add returns the element-wise sum a+other, expressed in a's unit. The
// operands must share a shape (ErrShapeMismatch) and inter-convertible
// units (ErrUnitMismatch); other is converted before the addition.
func (a *QArray) Add(other *QArray) (*QArray, error) {
	if err := sameShape(a, other); err != nil {
		return nil, err
	}
	conv, err := a.converted(other)
	if err != nil {
		return nil, err
	}

	out := a.Clone()
	for i := range out.data {
		out.data[i] += conv[i]
	}

	return out, nil
}

// Sub returns the element-wise difference a-other, expressed in a's unit.
func (a *QArray) Sub(other *QArray) (*QArray, error) {
	if err := sameShape(a, other); err != nil {
		return nil, err
	}
	conv, err := a.converted(other)
	if err != nil {
		return nil, err
	}

	out := a.Clone()
	for i := range out.data {
		out.data[i] -= conv[i]
	}

	return out, nil
}

// MulElem returns the element-wise product. The result's unit is the
// product of the operands' units.
func (a *QArray) MulElem(other *QArray) (*QArray, error) {
	return a.combineElem(other, false)
}

// DivElem returns the element-wise quotient a/other. The result's unit is
// the quotient of the operands' units. Element values divide as IEEE 754
// floats; a zero divisor yields Inf or NaN, not an error.
func (a *QArray) DivElem(other *QArray) (*QArray, error) {
	return a.combineElem(other, true)
}

func (a *QArray) combineElem(other *QArray, div bool) (*QArray, error) {
	if err := sameShape(a, other); err != nil {
		return nil, err
	}

	out := a.Clone()
	if div {
		for i := range out.data {
			out.data[i] /= other.data[i]
		}
	} else {
		for i := range out.data {
			out.data[i] *= other.data[i]
		}
	}

	switch {
	case other.unitless():
		// result keeps a's unit
	case a.unitless():
		u := other.u
		if div {
			var err error
			if u, err = unit.Pow(other.u, -1); err != nil {
				return nil, err
			}
		}
		out.u = u
	default:
		op := unit.Mul
		if div {
			op = unit.Div
		}
		// both attributes are normalized, so the combined coefficient is 1
		u, err := op(a.u, other.u)
		if err != nil {
			return nil, err
		}
		out.u = u
	}

	return out, nil
}

// Compare orders the arrays element-wise after converting other into a's
// unit: each entry is -1, 0 or +1 as a's element is smaller than, equal to
// or greater than other's. The operands must share a shape
// (ErrShapeMismatch) and inter-convertible units (ErrUnitMismatch).
func (a *QArray) Compare(other *QArray) ([]int, error) {
	if err := sameShape(a, other); err != nil {
		return nil, err
	}
	conv, err := a.converted(other)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(a.data))
	for i, v := range a.data {
		switch {
		case v < conv[i]:
			out[i] = -1
		case v > conv[i]:
			out[i] = 1
		}
	}

	return out, nil
}

// Equal reports element-wise equality after unit conversion, with the same
// shape and unit requirements as Compare.
func (a *QArray) Equal(other *QArray) ([]bool, error) {
	cmp, err := a.Compare(other)
	if err != nil {
		return nil, err
	}

	out := make([]bool, len(cmp))
	for i, c := range cmp {
		out[i] = c == 0
	}

	return out, nil
}

// Scale returns a copy with every element multiplied by k. The unit is
// unchanged.
func (a *QArray) Scale(k float64) *QArray {
	out := a.Clone()
	for i := range out.data {
		out.data[i] *= k
	}

	return out
}

// Neg returns a copy with every element negated. The unit is unchanged.
func (a *QArray) Neg() *QArray { return a.Scale(-1) }

// Abs returns a copy with the absolute value of every element. The unit is
// unchanged.
func (a *QArray) Abs() *QArray {
	out := a.Clone()
	for i, v := range out.data {
		out.data[i] = math.Abs(v)
	}

	return out
}

// Pow returns the array raised to the power p: every element and the unit
// attribute are both raised.
func (a *QArray) Pow(p float64) (*QArray, error) {
	out := a.Clone()
	for i, v := range out.data {
		out.data[i] = math.Pow(v, p)
	}
	if out.unitless() {
		return out, nil
	}

	u, err := unit.Pow(out.u, p)
	if err != nil {
		return nil, err
	}
	out.u = u

	return out, nil
}

// MulUnit returns a copy with the unit attribute multiplied by u, subject
// to the usual normalization.
func (a *QArray) MulUnit(u unit.Operand) (*QArray, error) {
	out := a.Clone()
	if out.unitless() {
		if err := out.SetUnit(u); err != nil {
			return nil, err
		}
		return out, nil
	}

	prod, err := unit.Mul(out.u, u)
	if err != nil {
		return nil, err
	}
	if err := out.SetUnit(prod); err != nil {
		return nil, err
	}

	return out, nil
}

// Base returns a copy expressed in base units: the payload is multiplied by
// the unit's base coefficient and the attribute replaced by its base form.
// A unitless array is returned unchanged (as a copy).
func (a *QArray) Base() *QArray {
	out := a.Clone()
	if out.unitless() {
		return out
	}

	// BaseForm carries the base coefficient, which SetUnit folds into the
	// payload for us.
	_ = out.SetUnit(out.u.BaseForm())

	return out
}
