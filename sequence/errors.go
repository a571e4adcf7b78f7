// SPDX-License-Identifier: MIT
// Package: halton/sequence
//
// errors.go — sentinel errors for the sequence package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Validation happens before any state changes: a failed call never moves
//     the cursor and never returns partial output.
//   • Option constructors (WithX) panic on meaningless input; generator methods
//     never panic on user input.
//
// Priority when several checks fail:
//   ErrInvalidDimension → ErrConfigurationMismatch (lengths) → ErrInvalidBase
//   → ErrConfigurationMismatch (tables) for New; ErrInvalidIndex → ErrInvalidCount
//   for Seek.

package sequence

import (
	"errors"

	"github.com/katalvlaran/halton/permutation"
)

var (
	// ErrInvalidDimension indicates a dimensionality below 1 or above MaxDimensions.
	ErrInvalidDimension = errors.New("sequence: invalid dimension")

	// ErrInvalidBase indicates an explicit base below 2, above permutation.MaxBase,
	// or repeated across dimensions. It is the permutation package's sentinel,
	// so errors.Is matches failures from either layer.
	ErrInvalidBase = permutation.ErrInvalidBase

	// ErrConfigurationMismatch indicates explicit bases/permutations whose count
	// differs from the dimensionality, a table whose length differs from its
	// base, a non-bijective table, or a restored State that fails its fingerprint.
	ErrConfigurationMismatch = errors.New("sequence: configuration mismatch")

	// ErrInvalidCount indicates a negative draw count, a buffer whose length is
	// not a multiple of the dimension, or a range that would overflow the index space.
	ErrInvalidCount = errors.New("sequence: invalid count")

	// ErrInvalidIndex indicates a negative start or reset index.
	ErrInvalidIndex = errors.New("sequence: invalid index")
)
