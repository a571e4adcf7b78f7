// SPDX-License-Identifier: MIT
// Package: halton/permutation

package permutation

import "strconv"

// MaxBase bounds table sizes. A table costs 8 bytes per digit, so the cap
// keeps any single table under 8 MiB.
const MaxBase = 1 << 20

// Mode selects how a table is derived from its base.
type Mode int

const (
	// Identity maps every digit to itself (classical Halton).
	Identity Mode = iota

	// Scrambled uses Faure's recursive permutations (generalized Halton).
	Scrambled

	// Random orders digits 1…b−1 by a seeded keyed hash; digit 0 is fixed.
	Random
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Identity:
		return "identity"
	case Scrambled:
		return "scrambled"
	case Random:
		return "random"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= Identity && m <= Random
}

// Table is a digit permutation for one base: digit d maps to t[d].
type Table []int

// Base returns the base the table permutes, i.e. its length.
func (t Table) Base() int { return len(t) }

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// IsIdentity reports whether t maps every digit to itself.
func (t Table) IsIdentity() bool {
	for d, v := range t {
		if v != d {
			return false
		}
	}
	return true
}

// Inverse returns the table u with u[t[d]] = d.
// t must be a valid bijection (see Validate).
func (t Table) Inverse() Table {
	out := make(Table, len(t))
	for d, v := range t {
		out[v] = d
	}
	return out
}
