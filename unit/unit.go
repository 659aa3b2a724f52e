package unit

// Unit is a named, documented wrapper around a unit expression. Base units
// and derived units are both Unit values, distinguished only by whether the
// defining expression is the trivial single-symbol, exponent-1 form.
//
// Used as an Operand, a Unit contributes a single term — itself, with
// exponent 1 — so derived units appear symbolically in results
// ("N" rather than "kg*m*s**-2") until reduced via BaseForm.
// Units are immutable and registered once with their owning System.
type Unit struct {
	symbol   string
	name     string
	quantity string
	sys      *System
	def      Expr // defining expression, as declared
	base     bool
}

// asExpr promotes the unit to its self-expression: coefficient 1, one term
// (the unit itself, exponent 1). The reduced base form is inherited from the
// defining expression.
func (u *Unit) asExpr() Expr {
	return Expr{
		sys:       u.sys,
		coeff:     1,
		terms:     []term{{unit: u, exp: 1}},
		baseExp:   u.def.baseExp,
		baseCoeff: u.def.baseCoeff,
	}
}

// Symbol returns the unit's symbol, e.g. "N".
func (u *Unit) Symbol() string { return u.symbol }

// Name returns the unit's display name, e.g. "newton".
func (u *Unit) Name() string { return u.name }

// Quantity returns the physical quantity the unit measures, e.g. "force".
func (u *Unit) Quantity() string { return u.quantity }

// System returns the owning unit system.
func (u *Unit) System() *System { return u.sys }

// IsBase reports whether the unit is one of its system's base units.
func (u *Unit) IsBase() bool { return u.base }

// Expr returns the unit's defining expression exactly as declared:
// "kg*m*s**-2.0" for a newton, the unit's own symbol for a base unit.
func (u *Unit) Expr() Expr { return u.def }

// SelfExpr returns the unit as an expression over itself: one term,
// exponent 1, coefficient 1. Equivalent to Scale(u, 1).
func (u *Unit) SelfExpr() Expr { return u.asExpr() }

// BaseForm returns the unit reduced to base-system symbols.
func (u *Unit) BaseForm() Expr { return u.def.BaseForm() }

// String returns the unit's symbol.
func (u *Unit) String() string { return u.symbol }
