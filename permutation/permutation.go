// SPDX-License-Identifier: MIT
// Package: halton/permutation
//
// permutation.go — table construction, memoization and validation.
//
// Contract:
//   • For/ForSeed are pure functions of their inputs; repeated calls return
//     equal (but independent) tables.
//   • The shared cache holds Identity and Scrambled tables only. Both are
//     pure functions of the base, so the cache is bounded by MaxBase entries
//     per mode. Random tables depend on a caller seed and are built per call.
//   • The cache is only written under its write lock; the recursive Faure
//     construction runs entirely inside that lock.

package permutation

import (
	"encoding/binary"
	"fmt"
	"sort"
	"sync"

	"github.com/dchest/siphash"
)

// Operation tags for error context.
const (
	opFor      = "For"
	opForSeed  = "ForSeed"
	opValidate = "Validate"
)

// key identifies one memoized table.
type key struct {
	base int
	mode Mode
}

// cache memoizes tables across generators.
type cache struct {
	mu     sync.RWMutex
	tables map[key]Table
}

var shared = &cache{tables: make(map[key]Table)}

// For returns the table for base under mode. Random mode uses seed 0;
// use ForSeed to pick another seed.
//
// Errors:
//   - ErrInvalidBase if base < 2 or base > MaxBase.
//   - ErrUnknownMode if mode is not a defined Mode.
//
// Complexity: O(b) on a cache hit (copy); O(b log b) worst case to build.
func For(base int, mode Mode) (Table, error) {
	if err := checkBase(opFor, base); err != nil {
		return nil, err
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%s(base=%d, mode=%s): %w", opFor, base, mode, ErrUnknownMode)
	}
	if mode == Random {
		return keyed(base, 0), nil
	}
	return shared.get(key{base: base, mode: mode}).Clone(), nil
}

// ForSeed returns the Random-mode table for base and seed.
// Seeded tables are not cached; each call builds a fresh table.
//
// Errors:
//   - ErrInvalidBase if base < 2 or base > MaxBase.
//
// Complexity: O(b log b).
func ForSeed(base int, seed uint64) (Table, error) {
	if err := checkBase(opForSeed, base); err != nil {
		return nil, err
	}
	return keyed(base, seed), nil
}

// Validate reports whether t is a bijection on {0, …, base−1}.
//
// Errors:
//   - ErrInvalidBase if base < 2.
//   - ErrNotBijective if len(t) != base, or a value is out of range or repeated.
func Validate(t Table, base int) error {
	if base < 2 {
		return permErrorf(opValidate, base, ErrInvalidBase)
	}
	if len(t) != base {
		return fmt.Errorf("%s(base=%d): length %d: %w", opValidate, base, len(t), ErrNotBijective)
	}
	seen := make([]bool, base)
	for d, v := range t {
		if v < 0 || v >= base {
			return fmt.Errorf("%s(base=%d): digit %d maps to %d: %w", opValidate, base, d, v, ErrNotBijective)
		}
		if seen[v] {
			return fmt.Errorf("%s(base=%d): value %d repeated: %w", opValidate, base, v, ErrNotBijective)
		}
		seen[v] = true
	}
	return nil
}

// checkBase enforces 2 ≤ base ≤ MaxBase.
func checkBase(op string, base int) error {
	if base < 2 || base > MaxBase {
		return permErrorf(op, base, ErrInvalidBase)
	}
	return nil
}

// get returns the cached table for k, building it on a miss.
// The returned slice is shared; callers must Clone before handing it out.
func (c *cache) get(k key) Table {
	c.mu.RLock()
	t, ok := c.tables[k]
	c.mu.RUnlock()
	if ok {
		return t
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buildLocked(k)
}

// buildLocked looks k up again and builds it if still missing. k.mode is
// Identity or Scrambled. mu must be held.
func (c *cache) buildLocked(k key) Table {
	if t, ok := c.tables[k]; ok {
		return t
	}

	var t Table
	if k.mode == Scrambled {
		t = c.faureLocked(k.base)
	} else {
		t = identity(k.base)
	}
	c.tables[k] = t
	return t
}

// faureLocked builds σ_b from σ_{b/2} (even b) or σ_{b−1} (odd b).
// Intermediate tables are memoized too, so a run of increasing bases only
// pays for the new ones. mu must be held.
func (c *cache) faureLocked(b int) Table {
	if b == 2 {
		return Table{0, 1}
	}

	t := make(Table, b)
	if b%2 == 0 {
		c2 := b / 2
		half := c.buildLocked(key{base: c2, mode: Scrambled})
		for i, v := range half {
			t[i] = 2 * v
			t[c2+i] = 2*v + 1
		}
		return t
	}

	c2 := b / 2
	prev := c.buildLocked(key{base: b - 1, mode: Scrambled})
	shift := func(v int) int {
		if v >= c2 {
			return v + 1
		}
		return v
	}
	for i := 0; i < c2; i++ {
		t[i] = shift(prev[i])
	}
	t[c2] = c2
	for i := c2 + 1; i < b; i++ {
		t[i] = shift(prev[i-1])
	}
	return t
}

// identity returns (0, 1, …, b−1).
func identity(b int) Table {
	t := make(Table, b)
	for i := range t {
		t[i] = i
	}
	return t
}

// keyed orders digits 1…b−1 by SipHash(seed, base; digit), keeping 0 fixed.
// Ties (astronomically unlikely) fall back to digit order so the result is
// always a total order.
func keyed(b int, seed uint64) Table {
	type entry struct {
		digit int
		rank  uint64
	}
	entries := make([]entry, b-1)
	var buf [8]byte
	for d := 1; d < b; d++ {
		binary.LittleEndian.PutUint64(buf[:], uint64(d))
		entries[d-1] = entry{digit: d, rank: siphash.Hash(seed, uint64(b), buf[:])}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].rank != entries[j].rank {
			return entries[i].rank < entries[j].rank
		}
		return entries[i].digit < entries[j].digit
	})

	t := make(Table, b)
	for i, e := range entries {
		t[i+1] = e.digit
	}
	return t
}
