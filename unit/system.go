package unit

import (
	"fmt"
	"sync"
)

// System is a closed family of units: a fixed, ordered set of base units
// plus every derived unit declared against them. Each Expr produced by the
// system's arithmetic carries the *System pointer as its identity token;
// binary operations compare tokens before proceeding, so expressions from
// two independently declared systems never interoperate — even when the
// systems define identical symbols.
//
// Construction is a one-time step: NewSystem validates and mints the base
// units before the System is published. Derived-unit declarations (Define)
// are guarded by a RW mutex; after the constant tables of a system are
// built, the System is read-only in practice for the rest of the process.
type System struct {
	name    string
	symbols []Symbol
	base    []*Unit
	dim     int

	mu    sync.RWMutex
	units map[string]*Unit // every registered unit, base and derived
}

// NewSystem declares a unit system from an ordered, duplicate-free list of
// base-unit symbols. One base Unit is minted per Symbol, each with the
// trivial self-expression (coefficient 1, own symbol with exponent 1).
//
// Fails fast at definition time — never at first use — with
// ErrInvalidSymbol for a malformed symbol or ErrDuplicateSymbol for a
// repeated one, both wrapped with the offending symbol.
func NewSystem(name string, symbols ...Symbol) (*System, error) {
	s := &System{
		name:    name,
		symbols: append([]Symbol(nil), symbols...),
		base:    make([]*Unit, len(symbols)),
		dim:     len(symbols),
		units:   make(map[string]*Unit, len(symbols)),
	}

	for i, sym := range symbols {
		if !ValidSymbol(sym.Symbol) {
			return nil, fmt.Errorf("system %q: %q: %w", name, sym.Symbol, ErrInvalidSymbol)
		}
		if _, dup := s.units[sym.Symbol]; dup {
			return nil, fmt.Errorf("system %q: %q: %w", name, sym.Symbol, ErrDuplicateSymbol)
		}

		u := &Unit{
			symbol:   sym.Symbol,
			name:     sym.Name,
			quantity: sym.Quantity,
			sys:      s,
			base:     true,
		}
		// The defining expression of a base unit is its own symbol with
		// exponent 1; its base form is the i-th unit vector.
		vec := make([]float64, len(symbols))
		vec[i] = 1
		u.def = Expr{
			sys:       s,
			coeff:     1,
			terms:     []term{{unit: u, exp: 1}},
			baseExp:   vec,
			baseCoeff: 1,
		}

		s.base[i] = u
		s.units[sym.Symbol] = u
	}

	return s, nil
}

// Name returns the system's name.
func (s *System) Name() string { return s.name }

// Dim returns the number of base dimensions of the system.
func (s *System) Dim() int { return s.dim }

// Symbols returns a copy of the ordered base-symbol descriptors.
func (s *System) Symbols() []Symbol {
	return append([]Symbol(nil), s.symbols...)
}

// BaseUnits returns the base units in declaration order.
func (s *System) BaseUnits() []*Unit {
	return append([]*Unit(nil), s.base...)
}

// Base returns the base unit registered under symbol, if any.
func (s *System) Base(symbol string) (*Unit, bool) {
	s.mu.RLock()
	u, ok := s.units[symbol]
	s.mu.RUnlock()
	if !ok || !u.base {
		return nil, false
	}

	return u, true
}

// Unit returns the unit (base or derived) registered under symbol, if any.
func (s *System) Unit(symbol string) (*Unit, bool) {
	s.mu.RLock()
	u, ok := s.units[symbol]
	s.mu.RUnlock()

	return u, ok
}

// One returns the dimensionless unit expression of the system:
// coefficient 1, no terms.
func (s *System) One() Expr {
	return s.Number(1)
}

// Number returns a pure-number expression of the system with the given
// coefficient and no terms. It is how plain reals enter additive arithmetic.
func (s *System) Number(k float64) Expr {
	return Expr{
		sys:       s,
		coeff:     k,
		baseExp:   make([]float64, s.dim),
		baseCoeff: k,
	}
}

// Define declares a derived unit: a named, documented wrapper around the
// given expression, registered as a constant of this system.
//
// The symbol must be a fresh, legal identifier within the system
// (ErrInvalidSymbol, ErrDuplicateSymbol) and the expression must be bound
// to this system (ErrSystemMismatch). The expression is stored as given —
// not reduced — so String on the unit's defining expression renders the
// declaration form. An expression with coefficient zero is valid algebra
// and accepted here; it is the quantity boundary that refuses to attach it.
func (s *System) Define(symbol, name, quantity string, e Operand) (*Unit, error) {
	x := e.asExpr()
	if x.sys == nil {
		return nil, ErrUnboundExpr
	}
	if x.sys != s {
		return nil, fmt.Errorf("system %q: define %q: %w", s.name, symbol, ErrSystemMismatch)
	}
	if !ValidSymbol(symbol) {
		return nil, fmt.Errorf("system %q: %q: %w", s.name, symbol, ErrInvalidSymbol)
	}

	u := &Unit{
		symbol:   symbol,
		name:     name,
		quantity: quantity,
		sys:      s,
		def:      x,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.units[symbol]; dup {
		return nil, fmt.Errorf("system %q: %q: %w", s.name, symbol, ErrDuplicateSymbol)
	}
	s.units[symbol] = u

	return u, nil
}
