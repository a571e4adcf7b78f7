// SPDX-License-Identifier: MIT
// Package: halton/pointset
//
// errors.go — sentinel errors for the pointset package.
// Every message is prefixed with "pointset: ..."; public methods wrap these
// with their method name and coordinates, so callers match via errors.Is.

package pointset

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (n<0 or d<1),
	// or when a flat buffer's length is not a multiple of the dimension.
	ErrBadShape = errors.New("pointset: invalid shape")

	// ErrOutOfRange indicates a point or dimension index outside valid bounds.
	ErrOutOfRange = errors.New("pointset: index out of range")

	// ErrDimensionMismatch indicates rows (or streamed points) of differing length.
	ErrDimensionMismatch = errors.New("pointset: dimension mismatch")

	// ErrEmpty indicates an operation that needs at least one point.
	ErrEmpty = errors.New("pointset: no points")
)

// setErrorf wraps err as "Set.<method>(i,j): %w".
func setErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Set.%s(%d,%d): %w", method, i, j, err)
}

// opErrorf wraps err as "<op>: %w".
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
