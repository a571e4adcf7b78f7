// Package halton is a small, deterministic toolkit for low-discrepancy
// sampling: classical and generalized (scrambled) Halton sequences, plus the
// point-set utilities needed to use and judge them.
//
// 🚀 What is halton?
//
//	A thread-safe quasi-Monte Carlo library that brings together:
//		• Primes: a shared, growable table of the first n primes
//		• Permutations: identity, Faure-scrambled and seeded digit tables
//		• Radical inverses: digit expansion, permuted evaluation, odometer counters
//		• Sequences: stateful generators with reset, seek, snapshots and fan-out
//		• Point sets: dense storage, summaries, streaming quantiles, discrepancy
//
// ✨ Why choose halton?
//
//   - Reproducible: same configuration, same points, on every run and machine
//   - Random access: any index range is computable without replaying the prefix
//   - Safe by default: scrambled tables avoid the correlated planes classical
//     Halton shows in high dimensions
//
// Packages:
//
//	prime/       — first-n primes, shared cache
//	permutation/ — per-base digit permutations (Identity, Scrambled, Random)
//	radical/     — radical inverse and digit counters
//	sequence/    — Generator, Seek, Parallel, State snapshots
//	pointset/    — row-major point sets, statistics, discrepancy measures
//
// Quick example:
//
//	g, _ := sequence.New(3)
//	pts, _ := g.Next(1024)
//
//	go get github.com/katalvlaran/halton
package halton
