// SPDX-License-Identifier: MIT
// Package: halton/permutation
//
// errors.go — sentinel errors for the permutation package.
//
// Error policy:
//   • Only package-level sentinels are exposed; match them with errors.Is.
//   • Context (operation, base, offending digit) is attached with %w.

package permutation

import (
	"errors"
	"fmt"
)

// ErrInvalidBase indicates a base below 2 or above MaxBase.
var ErrInvalidBase = errors.New("permutation: invalid base")

// ErrUnknownMode indicates a Mode value outside Identity/Scrambled/Random.
var ErrUnknownMode = errors.New("permutation: unknown mode")

// ErrNotBijective indicates a table whose length differs from its base, or
// whose image is not exactly {0, …, base−1}.
var ErrNotBijective = errors.New("permutation: table is not a bijection")

// permErrorf wraps err with "<op>(base=<b>): ".
func permErrorf(op string, base int, err error) error {
	return fmt.Errorf("%s(base=%d): %w", op, base, err)
}
