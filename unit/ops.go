// Package unit: expression arithmetic.
// All operations are pure functions: they read only their operands, return a
// new Expr, and never mutate shared state. The named functions below are the
// primary, testable surface of the algebra; any operator-style sugar in
// callers must delegate here.

package unit

import "math"

// Mul returns a*b.
//
// The result coefficient is the product of the operand coefficients; term
// exponents are combined key-wise (an absent key counts as exponent 0) and
// zero-exponent results are pruned. The left operand's term order is
// preserved; terms new to the result are appended in the right operand's
// order. Returns ErrSystemMismatch when the operands belong to different
// systems.
func Mul(a, b Operand) (Expr, error) {
	x, y := a.asExpr(), b.asExpr()
	if err := sameSystem(x, y); err != nil {
		return Expr{}, err
	}

	return Expr{
		sys:       x.sys,
		coeff:     x.coeff * y.coeff,
		terms:     mergeTerms(x.terms, y.terms, 1),
		baseExp:   combineVec(x.baseExp, y.baseExp, 1),
		baseCoeff: x.baseCoeff * y.baseCoeff,
	}, nil
}

// Div returns a/b, equivalent to multiplying a by the reciprocal of b
// (every exponent negated, coefficient inverted).
// Returns ErrDivisionByZero when b's coefficient — symbolic or reduced —
// is zero, and ErrSystemMismatch on mixed systems.
func Div(a, b Operand) (Expr, error) {
	x, y := a.asExpr(), b.asExpr()
	if err := sameSystem(x, y); err != nil {
		return Expr{}, err
	}
	if y.coeff == 0 || y.baseCoeff == 0 {
		return Expr{}, ErrDivisionByZero
	}

	return Expr{
		sys:       x.sys,
		coeff:     x.coeff / y.coeff,
		terms:     mergeTerms(x.terms, y.terms, -1),
		baseExp:   combineVec(x.baseExp, y.baseExp, -1),
		baseCoeff: x.baseCoeff / y.baseCoeff,
	}, nil
}

// Pow returns a**p for any real p, including negative and fractional
// exponents: the coefficient is raised to p and every term exponent is
// multiplied by p (terms vanishing to exponent 0 are pruned).
// Returns ErrInvalidExponent when the coefficient is zero and p < 0.
func Pow(a Operand, p float64) (Expr, error) {
	x := a.asExpr()
	if x.sys == nil {
		return Expr{}, ErrUnboundExpr
	}
	if (x.coeff == 0 || x.baseCoeff == 0) && p < 0 {
		return Expr{}, ErrInvalidExponent
	}

	var terms []term
	if p != 0 {
		terms = make([]term, len(x.terms))
		for i, t := range x.terms {
			terms[i] = term{unit: t.unit, exp: t.exp * p}
		}
	}
	baseExp := make([]float64, len(x.baseExp))
	for i, e := range x.baseExp {
		baseExp[i] = e * p
	}

	return Expr{
		sys:       x.sys,
		coeff:     math.Pow(x.coeff, p),
		terms:     terms,
		baseExp:   baseExp,
		baseCoeff: math.Pow(x.baseCoeff, p),
	}, nil
}

// Scale returns a scaled by the plain number k: the coefficient is
// multiplied by k, terms are unchanged. This is the operation behind
// numeric-literal multiplication and it never fails.
func Scale(a Operand, k float64) Expr {
	x := a.asExpr()
	x.coeff *= k
	x.baseCoeff *= k

	return x
}

// Neg returns the negation of a (Scale by -1).
func Neg(a Operand) Expr { return Scale(a, -1) }

// Abs returns a with the absolute value of its coefficient.
func Abs(a Operand) Expr {
	x := a.asExpr()
	x.coeff = math.Abs(x.coeff)
	x.baseCoeff = math.Abs(x.baseCoeff)

	return x
}

// Add returns a+b.
//
// The operands must be proportional (same base dimension vector), otherwise
// ErrDimensionMismatch is returned. On success both operands are reduced to
// base form, the base coefficients are summed, and the result is re-expressed
// as a coefficient multiplying the LEFT operand's symbolic form:
//
//	result = (base(a) + base(b)) / base(a) * a
//
// so x+y and y+x can render differently while remaining Equal. A left
// operand with base coefficient zero cannot anchor the form and the result
// takes b's form instead.
func Add(a, b Operand) (Expr, error) {
	x, y := a.asExpr(), b.asExpr()
	if err := sameSystem(x, y); err != nil {
		return Expr{}, err
	}
	if !sameDim(x.baseExp, y.baseExp) {
		return Expr{}, ErrDimensionMismatch
	}
	if x.baseCoeff == 0 {
		return y, nil
	}

	baseCoeff := x.baseCoeff + y.baseCoeff
	x.coeff = baseCoeff / x.baseCoeff * x.coeff
	x.baseCoeff = baseCoeff

	return x, nil
}

// Sub returns a-b with the same proportionality requirement and
// form-preservation rule as Add.
func Sub(a, b Operand) (Expr, error) {
	x, y := a.asExpr(), b.asExpr()
	if err := sameSystem(x, y); err != nil {
		return Expr{}, err
	}
	if !sameDim(x.baseExp, y.baseExp) {
		return Expr{}, ErrDimensionMismatch
	}
	if x.baseCoeff == 0 {
		return Neg(y), nil
	}

	baseCoeff := x.baseCoeff - y.baseCoeff
	x.coeff = baseCoeff / x.baseCoeff * x.coeff
	x.baseCoeff = baseCoeff

	return x, nil
}

// Equal reports whether a and b denote the same unit: identical base
// dimension vectors (compared exactly) and base coefficients equal within
// the relative tolerance Epsilon. Expressions from different systems are
// never equal; Equal short-circuits false rather than failing.
func Equal(a, b Operand) bool {
	x, y := a.asExpr(), b.asExpr()
	if x.sys == nil || x.sys != y.sys {
		return false
	}
	if !sameDim(x.baseExp, y.baseExp) {
		return false
	}

	return floatEqual(x.baseCoeff, y.baseCoeff)
}

// ProportionalTo reports whether a can be converted to b by multiplication
// with a constant: the base dimension vectors match exactly, coefficients
// are ignored. Cross-system comparison returns false rather than failing.
func ProportionalTo(a, b Operand) bool {
	x, y := a.asExpr(), b.asExpr()
	if x.sys == nil || x.sys != y.sys {
		return false
	}

	return sameDim(x.baseExp, y.baseExp)
}

// ScalingFactor returns the factor that converts a into b, i.e.
// base(b)/base(a), so that ScalingFactor(cm, m) == 100. The second result
// is false when the expressions are not proportional, or when a's base
// coefficient is zero — "not convertible" is an expected outcome, not an
// error.
func ScalingFactor(a, b Operand) (float64, bool) {
	x, y := a.asExpr(), b.asExpr()
	if !ProportionalTo(x, y) || x.baseCoeff == 0 {
		return 0, false
	}

	return y.baseCoeff / x.baseCoeff, true
}

// sameSystem validates that both operands are bound and bound to the same
// system.
func sameSystem(x, y Expr) error {
	if x.sys == nil || y.sys == nil {
		return ErrUnboundExpr
	}
	if x.sys != y.sys {
		return ErrSystemMismatch
	}

	return nil
}

// sameDim compares two base dimension vectors exactly.
func sameDim(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// combineVec returns a + sign*b element-wise.
func combineVec(a, b []float64, sign float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + sign*b[i]
	}

	return out
}

// mergeTerms combines two term lists key-wise: exponents of terms naming the
// same unit are summed (the right list entering with the given sign), terms
// whose exponent reaches zero are pruned, left-list order is preserved and
// genuinely new terms are appended in right-list order.
func mergeTerms(left, right []term, sign float64) []term {
	out := make([]term, len(left), len(left)+len(right))
	copy(out, left)

	for _, rt := range right {
		merged := false
		for i := range out {
			if out[i].unit == rt.unit {
				out[i].exp += sign * rt.exp
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, term{unit: rt.unit, exp: sign * rt.exp})
		}
	}

	// Prune zero exponents, preserving order.
	pruned := out[:0]
	for _, t := range out {
		if t.exp != 0 {
			pruned = append(pruned, t)
		}
	}
	if len(pruned) == 0 {
		return nil
	}

	return pruned
}

// floatEqual compares two coefficients within the relative tolerance
// Epsilon.
func floatEqual(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))

	return math.Abs(a-b) <= Epsilon*scale
}
