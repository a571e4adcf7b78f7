// SPDX-License-Identifier: MIT
// Package: halton/prime
//
// errors.go — sentinel errors for the prime package.
//
// Callers branch with errors.Is; context is attached with %w at the call site.

package prime

import (
	"errors"
	"fmt"
)

// ErrInvalidCount indicates that a requested prime count or index is outside
// the supported range [1, MaxCount] (or [0, MaxCount) for Nth).
var ErrInvalidCount = errors.New("prime: count out of supported range")

// primeErrorf prefixes err with the operation tag, keeping the sentinel for errors.Is.
func primeErrorf(op string, n int, err error) error {
	return fmt.Errorf("%s(%d): %w", op, n, err)
}
