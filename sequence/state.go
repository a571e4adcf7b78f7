// SPDX-License-Identifier: MIT
// Package: halton/sequence
//
// state.go — exportable generator state.
//
// The engine persists nothing. A caller that needs to resume a sequence in a
// later process saves a State (plain data, any encoding it likes) and passes
// it to Restore. The fingerprint covers the tables, not the cursor, so two
// generators that produce the same sequence share a fingerprint regardless of
// position.

package sequence

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/katalvlaran/halton/permutation"
)

// State is a value snapshot of a Generator.
type State struct {
	Dimensions   int
	Mode         permutation.Mode
	Seed         uint64 // Random mode only; rebuilds the tables when Permutations is nil
	Start        int
	Cursor       int
	Bases        []int
	Permutations [][]int

	// Fingerprint, when non-zero, must match the tables on Restore.
	Fingerprint [blake2b.Size256]byte
}

// Snapshot captures the generator's configuration and cursor.
func (g *Generator) Snapshot() State {
	return State{
		Dimensions:   g.dims,
		Mode:         g.mode,
		Seed:         g.seed,
		Start:        g.start,
		Cursor:       g.Cursor(),
		Bases:        g.Bases(),
		Permutations: g.Permutations(),
		Fingerprint:  g.Fingerprint(),
	}
}

// Fingerprint returns a BLAKE2b-256 digest of D, the bases and the tables.
func (g *Generator) Fingerprint() [blake2b.Size256]byte {
	return fingerprint(g.bases, g.perms)
}

// Restore rebuilds a generator from s and moves its cursor to s.Cursor.
// When s.Permutations is nil the tables are derived from s.Mode (and s.Seed
// for Random), so a stripped State still restores the same sequence.
//
// Errors:
//   - ErrInvalidIndex if s.Start or s.Cursor is negative.
//   - ErrConfigurationMismatch if s.Fingerprint is set and does not match.
//   - Any error New reports for s.Dimensions, s.Bases or s.Permutations.
func Restore(s State) (*Generator, error) {
	if s.Start < 0 || s.Cursor < 0 {
		return nil, fmt.Errorf("%s: start %d, cursor %d: %w", opRestore, s.Start, s.Cursor, ErrInvalidIndex)
	}

	opts := []Option{
		WithBases(s.Bases),
		WithPermutations(s.Permutations),
		WithStart(s.Start),
	}
	switch {
	case s.Mode == permutation.Random:
		opts = append(opts, WithSeed(s.Seed))
	case s.Mode.Valid():
		opts = append(opts, WithMode(s.Mode))
	}
	g, err := New(s.Dimensions, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRestore, err)
	}

	var zero [blake2b.Size256]byte
	if s.Fingerprint != zero && s.Fingerprint != g.Fingerprint() {
		return nil, fmt.Errorf("%s: fingerprint differs from tables: %w", opRestore, ErrConfigurationMismatch)
	}

	g.moveLocked(s.Cursor)
	return g, nil
}

// fingerprint hashes D, then every (base, table) pair, as little-endian uint64s.
func fingerprint(bases []int, perms []permutation.Table) [blake2b.Size256]byte {
	h, _ := blake2b.New256(nil) // never fails without a key

	var word [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(word[:], uint64(v))
		h.Write(word[:])
	}

	put(len(bases))
	for j, b := range bases {
		put(b)
		for _, v := range perms[j] {
			put(v)
		}
	}

	var out [blake2b.Size256]byte
	copy(out[:], h.Sum(nil))
	return out
}
