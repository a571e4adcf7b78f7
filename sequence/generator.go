// SPDX-License-Identifier: MIT
// Package: halton/sequence
//
// generator.go — configuration, cursor state and draws.
//
// Lifecycle:
//   New (Unconfigured → Ready) builds D (base, table) pairs once and parks the
//   cursor at the configured start. Next (Ready → Advancing → Ready) emits
//   points for [C, C+count) and moves C. Reset/ResetTo reposition C without
//   rebuilding tables. Seek reads any range without touching C.
//
// Concurrency:
//   Tables are immutable after New and shared read-only. mu serializes the
//   cursor read-modify-write in Next/NextInto/Reset/ResetTo so concurrent
//   callers never receive overlapping or skipped ranges. Seek takes no lock.

package sequence

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/halton/permutation"
	"github.com/katalvlaran/halton/pointset"
	"github.com/katalvlaran/halton/prime"
	"github.com/katalvlaran/halton/radical"
)

// MaxDimensions caps the dimensionality of one generator. The 1000th prime
// is 7919, so the largest default table holds 7919 digits.
const MaxDimensions = 1000

// Operation tags for error context.
const (
	opNew      = "New"
	opNext     = "Next"
	opNextInto = "NextInto"
	opNextSet  = "NextSet"
	opSeek     = "Seek"
	opResetTo  = "ResetTo"
	opRestore  = "Restore"
	opParallel = "Parallel"
)

// Point is one sample in [0,1)^D.
type Point []float64

// Generator emits a (generalized) Halton sequence. Create it with New.
type Generator struct {
	dims  int
	mode  permutation.Mode
	seed  uint64
	start int
	bases []int
	perms []permutation.Table

	mu       sync.Mutex
	cursor   int
	counters []*radical.Counter // one per dimension, positioned at cursor
}

// New configures a generator for the given dimensionality.
//
// Errors:
//   - ErrInvalidDimension if dimensions < 1 or > MaxDimensions.
//   - ErrConfigurationMismatch if WithBases/WithPermutations supply a count other
//     than dimensions, or a table that is not a bijection of its base.
//   - ErrInvalidBase if an explicit base is < 2, > permutation.MaxBase, or repeated.
//
// Complexity: O(Σ b_j) to build tables on a cold cache, O(Σ b_j) copy otherwise.
func New(dimensions int, opts ...Option) (*Generator, error) {
	if dimensions < 1 || dimensions > MaxDimensions {
		return nil, fmt.Errorf("%s(%d): %w", opNew, dimensions, ErrInvalidDimension)
	}
	cfg := newConfig(opts...)

	bases, err := resolveBases(dimensions, cfg.bases)
	if err != nil {
		return nil, err
	}
	perms, err := resolvePermutations(bases, cfg)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		dims:     dimensions,
		mode:     cfg.mode,
		seed:     cfg.seed,
		start:    cfg.start,
		bases:    bases,
		perms:    perms,
		counters: make([]*radical.Counter, dimensions),
	}
	for j, b := range bases {
		g.counters[j] = radical.NewCounter(b)
	}
	g.moveLocked(cfg.start)
	return g, nil
}

// Halton returns a classical (unscrambled) Halton generator.
func Halton(dimensions int) (*Generator, error) {
	return New(dimensions, WithMode(permutation.Identity))
}

// Generalized returns a Faure-scrambled generalized Halton generator.
func Generalized(dimensions int) (*Generator, error) {
	return New(dimensions, WithMode(permutation.Scrambled))
}

// resolveBases returns explicit bases after validation, or the first d primes.
func resolveBases(d int, explicit []int) ([]int, error) {
	if explicit == nil {
		bases, err := prime.First(d)
		if err != nil {
			// Unreachable while MaxDimensions ≤ prime.MaxCount.
			return nil, fmt.Errorf("%s: %w: %w", opNew, ErrInvalidDimension, err)
		}
		return bases, nil
	}

	if len(explicit) != d {
		return nil, fmt.Errorf("%s: %d bases for %d dimensions: %w", opNew, len(explicit), d, ErrConfigurationMismatch)
	}
	seen := make(map[int]int, d)
	for j, b := range explicit {
		if b < 2 || b > permutation.MaxBase {
			return nil, fmt.Errorf("%s: base %d for dimension %d: %w", opNew, b, j, ErrInvalidBase)
		}
		if prev, dup := seen[b]; dup {
			return nil, fmt.Errorf("%s: base %d shared by dimensions %d and %d: %w", opNew, b, prev, j, ErrInvalidBase)
		}
		seen[b] = j
	}
	return append([]int(nil), explicit...), nil
}

// resolvePermutations validates explicit tables against bases or derives them from the mode.
func resolvePermutations(bases []int, cfg config) ([]permutation.Table, error) {
	out := make([]permutation.Table, len(bases))

	if cfg.perms != nil {
		if len(cfg.perms) != len(bases) {
			return nil, fmt.Errorf("%s: %d permutations for %d dimensions: %w", opNew, len(cfg.perms), len(bases), ErrConfigurationMismatch)
		}
		for j, p := range cfg.perms {
			t := permutation.Table(p)
			if err := permutation.Validate(t, bases[j]); err != nil {
				return nil, fmt.Errorf("%s: dimension %d: %w: %w", opNew, j, ErrConfigurationMismatch, err)
			}
			out[j] = t.Clone()
		}
		return out, nil
	}

	for j, b := range bases {
		var (
			t   permutation.Table
			err error
		)
		if cfg.mode == permutation.Random {
			t, err = permutation.ForSeed(b, cfg.seed)
		} else {
			t, err = permutation.For(b, cfg.mode)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: dimension %d: %w", opNew, j, err)
		}
		out[j] = t
	}
	return out, nil
}

// Dimensions returns D.
func (g *Generator) Dimensions() int { return g.dims }

// Mode returns the mode the tables were derived with. Generators built from
// explicit permutations report the mode option in effect (Scrambled by default).
func (g *Generator) Mode() permutation.Mode { return g.mode }

// Seed returns the seed set by WithSeed (0 if none). Only Random mode uses it.
func (g *Generator) Seed() uint64 { return g.seed }

// Start returns the index Reset returns to.
func (g *Generator) Start() int { return g.start }

// Bases returns a copy of the per-dimension bases.
func (g *Generator) Bases() []int {
	return append([]int(nil), g.bases...)
}

// Permutations returns a copy of the per-dimension tables.
func (g *Generator) Permutations() [][]int {
	out := make([][]int, len(g.perms))
	for j, t := range g.perms {
		out[j] = append([]int(nil), t...)
	}
	return out
}

// Cursor returns the next index Next will emit.
func (g *Generator) Cursor() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cursor
}

// Next returns the points for indices [C, C+count) in order and advances C by count.
// count == 0 returns an empty slice and leaves C unchanged.
//
// Errors:
//   - ErrInvalidCount if count < 0, count·D overflows, or C+count would
//     overflow; C is unchanged.
//
// Complexity: O(count·D) amortized (digit counters avoid re-division).
func (g *Generator) Next(count int) ([]Point, error) {
	if count < 0 || count > math.MaxInt/g.dims {
		return nil, fmt.Errorf("%s(%d): %w", opNext, count, ErrInvalidCount)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if count > math.MaxInt-g.cursor {
		return nil, fmt.Errorf("%s(%d): cursor %d would overflow: %w", opNext, count, g.cursor, ErrInvalidCount)
	}

	buf := make([]float64, count*g.dims)
	g.fill(g.counters, buf)
	g.cursor += count
	return split(buf, g.dims), nil
}

// NextInto fills dst with len(dst)/D consecutive points (row-major) and
// advances C accordingly. It allocates nothing, so callers can chunk large
// draws through one reusable buffer.
//
// Errors:
//   - ErrInvalidCount if len(dst) is not a multiple of D or C would overflow.
func (g *Generator) NextInto(dst []float64) (int, error) {
	if len(dst)%g.dims != 0 {
		return 0, fmt.Errorf("%s: buffer length %d is not a multiple of %d: %w", opNextInto, len(dst), g.dims, ErrInvalidCount)
	}
	count := len(dst) / g.dims

	g.mu.Lock()
	defer g.mu.Unlock()
	if count > math.MaxInt-g.cursor {
		return 0, fmt.Errorf("%s: cursor %d would overflow: %w", opNextInto, g.cursor, ErrInvalidCount)
	}
	g.fill(g.counters, dst)
	g.cursor += count
	return count, nil
}

// NextSet is Next returning the batch as a row-major pointset.Set.
func (g *Generator) NextSet(count int) (*pointset.Set, error) {
	if count < 0 || count > math.MaxInt/g.dims {
		return nil, fmt.Errorf("%s(%d): %w", opNextSet, count, ErrInvalidCount)
	}
	buf := make([]float64, count*g.dims)
	if _, err := g.NextInto(buf); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opNextSet, count, err)
	}
	return pointset.Wrap(buf, g.dims)
}

// Seek returns the points for [start, start+count) without moving C.
// Safe to call concurrently with every other method; workers may split the
// index space into disjoint ranges and Seek them independently.
//
// Errors:
//   - ErrInvalidIndex if start < 0.
//   - ErrInvalidCount if count < 0 or start+count would overflow.
func (g *Generator) Seek(start, count int) ([]Point, error) {
	buf, err := g.seek(start, count)
	if err != nil {
		return nil, err
	}
	return split(buf, g.dims), nil
}

// SeekSet is Seek returning the batch as a row-major pointset.Set.
func (g *Generator) SeekSet(start, count int) (*pointset.Set, error) {
	buf, err := g.seek(start, count)
	if err != nil {
		return nil, err
	}
	return pointset.Wrap(buf, g.dims)
}

// seek validates the range and computes it with private counters.
func (g *Generator) seek(start, count int) ([]float64, error) {
	if start < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opSeek, start, count, ErrInvalidIndex)
	}
	if count < 0 || count > math.MaxInt-start || count > math.MaxInt/g.dims {
		return nil, fmt.Errorf("%s(%d,%d): %w", opSeek, start, count, ErrInvalidCount)
	}

	counters := make([]*radical.Counter, g.dims)
	for j, b := range g.bases {
		counters[j] = radical.NewCounter(b)
		counters[j].Set(uint64(start))
	}
	buf := make([]float64, count*g.dims)
	g.fill(counters, buf)
	return buf, nil
}

// Reset moves C back to the configured start (0 unless WithStart was used).
func (g *Generator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.moveLocked(g.start)
}

// ResetTo moves C to index, enabling replay or seeking without rebuilding tables.
//
// Errors:
//   - ErrInvalidIndex if index < 0; C is unchanged.
func (g *Generator) ResetTo(index int) error {
	if index < 0 {
		return fmt.Errorf("%s(%d): %w", opResetTo, index, ErrInvalidIndex)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.moveLocked(index)
	return nil
}

// moveLocked repositions the cursor and counters. mu must be held (or g unshared).
func (g *Generator) moveLocked(index int) {
	g.cursor = index
	for _, c := range g.counters {
		c.Set(uint64(index))
	}
}

// fill writes len(dst)/D points from counters into dst, advancing counters.
func (g *Generator) fill(counters []*radical.Counter, dst []float64) {
	d := g.dims
	for off := 0; off < len(dst); off += d {
		for j, c := range counters {
			dst[off+j] = c.Value(g.perms[j])
			c.Inc()
		}
	}
}

// split views a flat row-major buffer as points of dimension d.
func split(buf []float64, d int) []Point {
	out := make([]Point, len(buf)/d)
	for i := range out {
		off := i * d
		out[i] = Point(buf[off : off+d : off+d])
	}
	return out
}
