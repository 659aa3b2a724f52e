// SPDX-License-Identifier: MIT
// Package qarray: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// qarray package. All operations return these sentinels and tests check
// them via errors.Is; no operation panics on user-triggered conditions.

package qarray

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (empty, or
	// any extent <= 0). Constructors must validate before allocation.
	ErrBadShape = errors.New("qarray: invalid shape")

	// ErrBadIndex indicates an index with the wrong number of coordinates
	// for the array's rank.
	ErrBadIndex = errors.New("qarray: index rank mismatch")

	// ErrOutOfRange indicates a coordinate outside the valid bounds of its
	// axis. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("qarray: index out of range")

	// ErrShapeMismatch indicates element-wise arithmetic between arrays of
	// different shapes.
	ErrShapeMismatch = errors.New("qarray: shape mismatch")

	// ErrBadData indicates backing data whose length does not match the
	// product of the shape extents.
	ErrBadData = errors.New("qarray: data length does not match shape")

	// ErrZeroUnit indicates an attempt to attach a unit with zero magnitude;
	// such a unit cannot be normalized away.
	ErrZeroUnit = errors.New("qarray: cannot attach zero-coefficient unit")

	// ErrUnitMismatch indicates element-wise additive arithmetic between
	// arrays whose units are not mutually convertible.
	ErrUnitMismatch = errors.New("qarray: operands have incompatible units")
)
