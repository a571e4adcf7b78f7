// SPDX-License-Identifier: MIT
// Package: halton/sequence
//
// options.go — functional options for New.
//
// Contract:
//   • Options mutate an unexported config; later options override earlier ones.
//   • Option constructors panic on meaningless inputs (unknown mode, negative
//     start). Data-dependent checks (lengths, bijectivity) happen in New and
//     surface as errors.
//   • Slices passed to options are copied; the caller may reuse them.
//
// Deterministic defaults:
//   • mode  = permutation.Scrambled
//   • seed  = 0 (used only by permutation.Random)
//   • bases = first D primes
//   • perms = derived from mode for each base
//   • start = 0

package sequence

import "github.com/katalvlaran/halton/permutation"

// Option customizes a Generator before its tables are built.
type Option func(*config)

// config is the resolved generator configuration.
type config struct {
	mode  permutation.Mode
	seed  uint64
	bases []int   // nil → first D primes
	perms [][]int // nil → derived from mode
	start int
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{mode: permutation.Scrambled}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMode selects how permutation tables are derived.
// Panics if m is not a defined permutation.Mode.
func WithMode(m permutation.Mode) Option {
	if !m.Valid() {
		panic("sequence: WithMode(" + m.String() + ")")
	}
	return func(c *config) {
		c.mode = m
	}
}

// WithSeed switches to permutation.Random with the given seed.
// Equal seeds reproduce equal tables on every run.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.mode = permutation.Random
		c.seed = seed
	}
}

// WithBases overrides the per-dimension bases. nil restores the prime default.
// Bases need not be prime, but must be ≥ 2 and pairwise distinct.
func WithBases(bases []int) Option {
	var cp []int
	if bases != nil {
		cp = make([]int, len(bases))
		copy(cp, bases)
	}
	return func(c *config) {
		c.bases = cp
	}
}

// WithPermutations overrides the per-dimension tables. nil restores derivation
// from the mode. Table j must be a bijection on {0, …, base_j−1}.
func WithPermutations(perms [][]int) Option {
	var cp [][]int
	if perms != nil {
		cp = make([][]int, len(perms))
		for i, p := range perms {
			cp[i] = append([]int(nil), p...)
		}
	}
	return func(c *config) {
		c.perms = cp
	}
}

// WithStart sets the initial cursor, which Reset also returns to.
// WithStart(1) skips the all-zero origin point. Panics if index < 0.
func WithStart(index int) Option {
	if index < 0 {
		panic("sequence: WithStart(index<0)")
	}
	return func(c *config) {
		c.start = index
	}
}
