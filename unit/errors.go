// Package unit: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the unit
// package. All operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.

package unit

import "errors"

// Every message is prefixed with "unit: ..." for consistency and to allow
// easy grepping across logs. When call-site context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will still use
// errors.Is to match.
var (
	// ErrInvalidSymbol indicates a unit symbol that is not a bare identifier
	// (must match ^[A-Za-z_][A-Za-z0-9_]*$ and be non-empty).
	ErrInvalidSymbol = errors.New("unit: symbol is not a valid identifier")

	// ErrDuplicateSymbol indicates a symbol already registered in the system.
	ErrDuplicateSymbol = errors.New("unit: duplicate symbol in unit system")

	// ErrSystemMismatch indicates an operation mixing expressions that belong
	// to two different unit systems. Expressions never cross systems.
	ErrSystemMismatch = errors.New("unit: expressions belong to different unit systems")

	// ErrDimensionMismatch indicates Add/Sub on expressions whose base
	// dimension vectors differ.
	ErrDimensionMismatch = errors.New("unit: dimension mismatch")

	// ErrDivisionByZero indicates division by an expression whose coefficient
	// is zero.
	ErrDivisionByZero = errors.New("unit: division by zero-coefficient expression")

	// ErrInvalidExponent indicates raising a zero-coefficient expression to a
	// negative power.
	ErrInvalidExponent = errors.New("unit: negative power of zero-coefficient expression")

	// ErrUnboundExpr indicates a zero-value Expr (not produced by a System)
	// was used as an operand.
	ErrUnboundExpr = errors.New("unit: expression is not bound to a unit system")
)
