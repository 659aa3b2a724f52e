package unit

import (
	"math"
	"strconv"
	"strings"
)

// Epsilon is the relative tolerance used by Equal when comparing the base
// coefficients of two expressions. Base exponent vectors are always compared
// exactly; only the accumulated coefficient is subject to tolerance, since
// repeated reduction through derived units can introduce floating-point
// drift.
const Epsilon = 1e-9

// term is one named factor of an expression: a unit raised to an exponent.
// Terms with exponent zero are pruned by the arithmetic that builds
// expressions, never stored.
type term struct {
	unit *Unit
	exp  float64
}

// Expr is an immutable unit expression: a numeric coefficient times a
// product of unit terms raised to real exponents.
//
// Every Expr is permanently bound to the System whose units appear in its
// terms. Alongside the symbolic form, an Expr carries its fully reduced base
// form (exponent per base symbol plus accumulated coefficient), maintained
// eagerly by every operation, so dimensional comparisons never re-reduce.
//
// The zero value is not a valid expression; obtain expressions from a
// System (One, Number, base units) or from the arithmetic in this package.
// Expressions are value types: operations return new expressions and no
// operation mutates its operands, so an Expr may be shared freely across
// goroutines.
type Expr struct {
	sys   *System
	coeff float64
	terms []term

	// reduced base-unit form, indexed by the system's symbol order
	baseExp   []float64
	baseCoeff float64
}

// Operand is anything usable as an operand of the expression arithmetic:
// an Expr, or a *Unit (promoted to its single-term self-expression).
// Plain numbers enter expressions through Scale and System.Number.
type Operand interface {
	asExpr() Expr
}

func (e Expr) asExpr() Expr { return e }

// System returns the unit system this expression is bound to, or nil for
// the zero value.
func (e Expr) System() *System { return e.sys }

// Coefficient returns the symbolic-form coefficient of the expression.
func (e Expr) Coefficient() float64 { return e.coeff }

// BaseCoefficient returns the coefficient of the expression after reduction
// to base units.
func (e Expr) BaseCoefficient() float64 { return e.baseCoeff }

// BaseExponents returns a copy of the base dimension vector: one exponent
// per base symbol, in system order.
func (e Expr) BaseExponents() []float64 {
	out := make([]float64, len(e.baseExp))
	copy(out, e.baseExp)
	return out
}

// NumTerms returns the number of symbolic terms in the expression.
func (e Expr) NumTerms() int { return len(e.terms) }

// Dimensionless reports whether the expression reduces to a pure number
// (all base exponents zero).
func (e Expr) Dimensionless() bool {
	for _, x := range e.baseExp {
		if x != 0 {
			return false
		}
	}
	return true
}

// BaseForm returns the expression re-expressed over the system's base units:
// one term per nonzero base exponent in system symbol order, coefficient
// equal to BaseCoefficient. The dimension vector is preserved exactly even
// though the symbolic term list changes.
func (e Expr) BaseForm() Expr {
	if e.sys == nil {
		return e
	}
	var terms []term
	for i, exp := range e.baseExp {
		if exp == 0 {
			continue
		}
		terms = append(terms, term{unit: e.sys.base[i], exp: exp})
	}

	return Expr{
		sys:       e.sys,
		coeff:     e.baseCoeff,
		terms:     terms,
		baseExp:   e.baseExp,
		baseCoeff: e.baseCoeff,
	}
}

// String renders the expression in its symbolic form: terms joined by "*"
// in construction order, an exponent of exactly 1 elided, every other
// exponent rendered with at least one decimal digit ("m**2.0", "s**-1.0").
// A coefficient of 1 is elided when terms are present; a pure-number
// expression renders as just its coefficient.
func (e Expr) String() string {
	var b strings.Builder
	for _, t := range e.terms {
		if b.Len() > 0 {
			b.WriteByte('*')
		}
		b.WriteString(t.unit.symbol)
		if t.exp != 1 {
			b.WriteString("**")
			b.WriteString(formatExponent(t.exp))
		}
	}

	if b.Len() == 0 {
		return formatNumber(e.coeff)
	}
	if e.coeff != 1 {
		return formatNumber(e.coeff) + "*" + b.String()
	}

	return b.String()
}

// BaseString renders the expression reduced to base units.
func (e Expr) BaseString() string {
	return e.BaseForm().String()
}

// formatExponent renders a term exponent: integral values keep one decimal
// digit ("2.0", "-1.0") so the output stays canonical and unambiguous;
// fractional values use the shortest exact representation ("0.5").
func formatExponent(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatNumber renders a coefficient: integral values keep one decimal digit
// ("10.0", "299792458.0"), everything else uses the shortest exact
// representation ("0.01", "1.602176634e-19").
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e16 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
