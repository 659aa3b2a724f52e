// SPDX-License-Identifier: MIT
package qarray

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/unitexpr/unit"
)

// QArray is a dense n-dimensional array of float64 values carrying a single
// unit attribute.
//
// shape holds the extent of each axis, stride the row-major step per axis,
// and data the len(shape)-dimensional payload flattened into prod(shape)
// elements. Methods never mutate their receiver except the explicitly
// mutating Set and SetUnit; arithmetic returns new arrays.
type QArray struct {
	shape  []int
	stride []int
	data   []float64

	u    unit.Expr // zero value means unitless
	info string
}

// Option configures a QArray at construction.
type Option func(*config)

type config struct {
	u    unit.Expr
	has  bool
	info string
}

// WithUnit attaches a unit or unit expression to the array. The attribute
// is normalized by the constructor (see the package comment).
func WithUnit(u unit.Operand) Option {
	return func(c *config) {
		c.u = unit.Scale(u, 1)
		c.has = true
	}
}

// WithInfo attaches a free-form description to the array.
func WithInfo(info string) Option {
	return func(c *config) { c.info = info }
}

// New creates a zero-filled array of the given shape. The shape must be
// non-empty with every extent > 0 (ErrBadShape). The unit defaults to the
// dimensionless unit when omitted.
func New(shape []int, opts ...Option) (*QArray, error) {
	n, stride, err := strides(shape)
	if err != nil {
		return nil, err
	}

	a := &QArray{
		shape:  append([]int(nil), shape...),
		stride: stride,
		data:   make([]float64, n),
	}

	return a.applyOptions(opts)
}

// From creates an array of the given shape from existing data, copying it.
// The data length must equal the product of the shape extents (ErrBadData).
func From(data []float64, shape []int, opts ...Option) (*QArray, error) {
	n, stride, err := strides(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("len %d for shape %v: %w", len(data), shape, ErrBadData)
	}

	a := &QArray{
		shape:  append([]int(nil), shape...),
		stride: stride,
		data:   append([]float64(nil), data...),
	}

	return a.applyOptions(opts)
}

// applyOptions resolves construction options and normalizes the unit.
func (a *QArray) applyOptions(opts []Option) (*QArray, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	a.info = c.info
	if !c.has {
		return a, nil
	}
	if err := a.SetUnit(c.u); err != nil {
		return nil, err
	}

	return a, nil
}

// strides validates a shape and computes row-major strides and total size.
func strides(shape []int) (int, []int, error) {
	if len(shape) == 0 {
		return 0, nil, ErrBadShape
	}
	for _, ext := range shape {
		if ext <= 0 {
			return 0, nil, fmt.Errorf("shape %v: %w", shape, ErrBadShape)
		}
	}

	stride := make([]int, len(shape))
	n := 1
	for i := len(shape) - 1; i >= 0; i-- {
		stride[i] = n
		n *= shape[i]
	}

	return n, stride, nil
}

// Shape returns a copy of the array's shape.
func (a *QArray) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Rank returns the number of axes.
func (a *QArray) Rank() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *QArray) Len() int { return len(a.data) }

// Data returns a copy of the flat row-major payload.
func (a *QArray) Data() []float64 {
	return append([]float64(nil), a.data...)
}

// Info returns the array's description string.
func (a *QArray) Info() string { return a.info }

// Unit returns the unit attribute; the second result is false for a
// unitless array. The stored attribute always has coefficient 1.
func (a *QArray) Unit() (unit.Expr, bool) { return a.u, !a.unitless() }

func (a *QArray) unitless() bool { return a.u.System() == nil }

// offset computes the flat index for idx or reports why it cannot.
func (a *QArray) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("got %d coordinates for rank %d: %w", len(idx), len(a.shape), ErrBadIndex)
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= a.shape[i] {
			return 0, fmt.Errorf("axis %d index %d of extent %d: %w", i, x, a.shape[i], ErrOutOfRange)
		}
		off += x * a.stride[i]
	}

	return off, nil
}

// At retrieves the element at the given coordinates.
func (a *QArray) At(idx ...int) (float64, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, err
	}

	return a.data[off], nil
}

// Set assigns v at the given coordinates.
func (a *QArray) Set(v float64, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return err
	}
	a.data[off] = v

	return nil
}

// SetUnit reassigns the unit attribute, normalizing it: a coefficient
// k ≠ 1 multiplies the payload by k and is divided out of the stored unit,
// so the attribute stays purely symbolic. Fails with ErrZeroUnit when the
// supplied unit's coefficient — symbolic or reduced — is zero.
func (a *QArray) SetUnit(u unit.Operand) error {
	e := unit.Scale(u, 1)
	if e.System() == nil {
		a.u = unit.Expr{}
		return nil
	}

	coeff := e.Coefficient()
	if coeff == 0 || e.BaseCoefficient() == 0 {
		return ErrZeroUnit
	}
	if coeff != 1 {
		for i := range a.data {
			a.data[i] *= coeff
		}
		e = unit.Scale(e, 1/coeff)
	}
	a.u = e

	return nil
}

// Clone returns a deep copy of the array.
func (a *QArray) Clone() *QArray {
	return &QArray{
		shape:  append([]int(nil), a.shape...),
		stride: append([]int(nil), a.stride...),
		data:   append([]float64(nil), a.data...),
		u:      a.u,
		info:   a.info,
	}
}

// String renders the flat payload, followed by the unit attribute when one
// is attached: "[1 2 3] unit: m".
func (a *QArray) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", a.data)
	if !a.unitless() {
		b.WriteString(" unit: ")
		b.WriteString(a.u.String())
	}

	return b.String()
}
