package quantity

import (
	"math"
	"strconv"

	"github.com/katalvlaran/unitexpr/unit"
)

// Quantity is an immutable scalar magnitude with an optional unit attribute
// and a free-form info string.
//
// The zero value is the unitless quantity 0.
type Quantity struct {
	value float64
	u     unit.Expr // zero value means unitless
	info  string
}

// Option configures a Quantity at construction.
type Option func(*config)

type config struct {
	u    unit.Expr
	has  bool
	info string
}

// WithUnit attaches a unit or unit expression to the quantity.
func WithUnit(u unit.Operand) Option {
	return func(c *config) {
		c.u = unit.Scale(u, 1)
		c.has = true
	}
}

// WithInfo attaches a free-form description to the quantity.
func WithInfo(info string) Option {
	return func(c *config) { c.info = info }
}

// New constructs a Quantity, normalizing the unit attribute: a unit supplied
// with coefficient k ≠ 1 multiplies the value by k and is stored with the
// coefficient divided out. Returns ErrZeroUnit when the unit's coefficient
// (symbolic or reduced) is zero.
func New(value float64, opts ...Option) (Quantity, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	q := Quantity{value: value, info: c.info}
	if !c.has {
		return q, nil
	}

	coeff := c.u.Coefficient()
	if coeff == 0 || c.u.BaseCoefficient() == 0 {
		return Quantity{}, ErrZeroUnit
	}
	if coeff != 1 {
		q.value *= coeff
		c.u = unit.Scale(c.u, 1/coeff)
	}
	q.u = c.u

	return q, nil
}

// Value returns the numerical magnitude of the quantity.
func (q Quantity) Value() float64 { return q.value }

// Unit returns the unit attribute; the second result is false for a
// unitless quantity.
func (q Quantity) Unit() (unit.Expr, bool) { return q.u, !q.unitless() }

// Info returns the quantity's description string.
func (q Quantity) Info() string { return q.info }

func (q Quantity) unitless() bool { return q.u.System() == nil }

// String renders "<value> <unit>", or just the value for a unitless
// quantity.
func (q Quantity) String() string {
	v := strconv.FormatFloat(q.value, 'g', -1, 64)
	if q.unitless() {
		return v
	}

	return v + " " + q.u.String()
}

// Scale returns the quantity multiplied by the plain number k.
func (q Quantity) Scale(k float64) Quantity {
	q.value *= k
	return q
}

// Neg returns the negated quantity.
func (q Quantity) Neg() Quantity { return q.Scale(-1) }

// Abs returns the quantity with the absolute value of its magnitude. The
// unit attribute is untouched.
func (q Quantity) Abs() Quantity {
	q.value = math.Abs(q.value)
	return q
}

// Pow returns q raised to the power p: the value and the unit attribute are
// both raised, so (3 m)**2 is 9 m**2.
func (q Quantity) Pow(p float64) (Quantity, error) {
	q.value = math.Pow(q.value, p)
	if q.unitless() {
		return q, nil
	}

	u, err := unit.Pow(q.u, p)
	if err != nil {
		return Quantity{}, err
	}
	q.u = u

	return q, nil
}

// Compare orders q against other after converting other into q's unit:
// -1 when q is smaller, 0 when the magnitudes coincide, +1 when q is
// larger. Returns ErrUnitMismatch when the units are not inter-convertible.
func (q Quantity) Compare(other Quantity) (int, error) {
	v, err := q.convertValue(other)
	if err != nil {
		return 0, err
	}
	switch {
	case q.value < v:
		return -1, nil
	case q.value > v:
		return 1, nil
	}

	return 0, nil
}

// Equal reports whether q and other denote the same magnitude, converting
// units as Compare does. Quantities with incompatible units compare unequal
// rather than failing.
func (q Quantity) Equal(other Quantity) bool {
	c, err := q.Compare(other)

	return err == nil && c == 0
}

// Add returns q+other, converting other into q's unit when the units are
// proportional. Returns ErrUnitMismatch when they are not (including the
// cross-system case).
func (q Quantity) Add(other Quantity) (Quantity, error) {
	v, err := q.convertValue(other)
	if err != nil {
		return Quantity{}, err
	}
	q.value += v

	return q, nil
}

// Sub returns q-other with the same conversion rule as Add.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	v, err := q.convertValue(other)
	if err != nil {
		return Quantity{}, err
	}
	q.value -= v

	return q, nil
}

// convertValue expresses other's magnitude in q's unit.
func (q Quantity) convertValue(other Quantity) (float64, error) {
	switch {
	case q.unitless() && other.unitless():
		return other.value, nil
	case q.unitless():
		if !other.u.Dimensionless() {
			return 0, ErrUnitMismatch
		}
		return other.value * other.u.BaseCoefficient(), nil
	case other.unitless():
		if !q.u.Dimensionless() {
			return 0, ErrUnitMismatch
		}
		return other.value / q.u.BaseCoefficient(), nil
	}

	sf, ok := unit.ScalingFactor(q.u, other.u)
	if !ok {
		return 0, ErrUnitMismatch
	}

	return other.value * sf, nil
}

// Mul returns q*other: magnitudes multiply and unit attributes combine.
func (q Quantity) Mul(other Quantity) (Quantity, error) {
	q.value *= other.value
	switch {
	case other.unitless():
		return q, nil
	case q.unitless():
		q.u = other.u
		return q, nil
	}

	u, err := unit.Mul(q.u, other.u)
	if err != nil {
		return Quantity{}, err
	}
	q.u = u

	return q, nil
}

// Div returns q/other: magnitudes divide and unit attributes combine.
func (q Quantity) Div(other Quantity) (Quantity, error) {
	q.value /= other.value
	switch {
	case other.unitless():
		return q, nil
	case q.unitless():
		u, err := unit.Pow(other.u, -1)
		if err != nil {
			return Quantity{}, err
		}
		q.u = u
		return q, nil
	}

	u, err := unit.Div(q.u, other.u)
	if err != nil {
		return Quantity{}, err
	}
	q.u = u

	return q, nil
}

// In converts the quantity into the target unit, e.g. meters to
// centimeters. Returns ErrUnitMismatch when the units are not proportional.
func (q Quantity) In(target unit.Operand) (Quantity, error) {
	t := unit.Scale(target, 1)
	if q.unitless() {
		if !t.Dimensionless() || t.BaseCoefficient() == 0 {
			return Quantity{}, ErrUnitMismatch
		}
		return New(q.value/t.BaseCoefficient(), WithUnit(t), WithInfo(q.info))
	}

	sf, ok := unit.ScalingFactor(t, q.u)
	if !ok {
		return Quantity{}, ErrUnitMismatch
	}

	return New(q.value*sf, WithUnit(t), WithInfo(q.info))
}

// Base re-expresses the quantity in its system's base units; a unitless
// quantity is returned unchanged.
func (q Quantity) Base() Quantity {
	if q.unitless() {
		return q
	}
	// The stored unit has coefficient 1 and nonzero base coefficient, so the
	// renormalization through New cannot fail.
	base, err := New(q.value, WithUnit(q.u.BaseForm()), WithInfo(q.info))
	if err != nil {
		return q
	}

	return base
}
