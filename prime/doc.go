// Package prime supplies the ascending table of prime numbers used as
// per-dimension bases by the Halton sequence generators.
//
// What it provides:
//
//   - First(n): the first n primes in ascending order (2, 3, 5, 7, ...).
//   - Nth(k):   the k-th prime, 0-based (Nth(0) == 2).
//   - IsPrime:  trial-division primality test for validation helpers.
//
// Storage:
//
//	A single process-wide table starts from a small precomputed list and is
//	extended on demand by re-running a sieve of Eratosthenes over a larger
//	bound (the bound grows until enough primes exist). Extension happens
//	under a write lock; lookups only take the read lock. Callers always
//	receive copies, so the shared table is never aliased.
//
// Limits:
//
//	MaxCount caps how many primes may be requested at once. The cap is a
//	configuration constraint, not a sieve limitation.
//
// Complexity:
//
//   - First(n) on a warm table: O(n) copy.
//   - Extension to n primes: O(L log log L) with L ≈ n(ln n + ln ln n).
package prime
