// Package permutation builds the per-dimension digit-scrambling tables of
// generalized Halton sequences.
//
// A Table for base b is a bijection on {0, …, b−1}: digit d of an index is
// replaced by t[d] before the radical inverse is reconstructed. Three modes
// are offered:
//
//   - Identity  — t[d] = d; yields the classical (unscrambled) Halton sequence.
//   - Scrambled — Faure's recursive permutations σ_b. Larger bases are derived
//     from smaller ones, so the table is a pure function of the base:
//
//     σ_2 = (0, 1)
//     b = 2c   : σ_b(i) = 2·σ_c(i),  σ_b(c+i) = 2·σ_c(i)+1        (0 ≤ i < c)
//     b = 2c+1 : σ_b(c) = c; the remaining positions take σ_2c in order,
//     with every value ≥ c shifted up by one.
//
//     e.g. σ_5 = (0 3 2 1 4), σ_7 = (0 2 5 3 1 4 6).
//
//   - Random    — digit 0 stays fixed, digits 1…b−1 are ordered by a keyed
//     SipHash of (seed, base, digit). Same seed ⇒ same tables on every run.
//
// Every built-in mode fixes digit 0, so trailing zero digits contribute
// nothing and the radical inverse of 0 is exactly 0.
//
// Identity and Scrambled tables are memoized per (base, mode) in a
// process-wide cache guarded by a sync.RWMutex. Random tables are rebuilt on
// every call, so arbitrary seeds never accumulate in memory. Lookups hand out
// copies; the cache is never aliased.
//
// Validate checks caller-supplied tables for bijectivity and size.
package permutation
