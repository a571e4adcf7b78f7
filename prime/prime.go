// SPDX-License-Identifier: MIT
// Package: halton/prime
//
// prime.go — shared, lock-guarded prime table with sieve extension.

package prime

import (
	"math"
	"sync"
)

// MaxCount is the largest number of primes First accepts in one call.
// The 2^20-th prime is 16,290,047, so the sieve never exceeds ~17 MB of flags.
const MaxCount = 1 << 20

// Operation tags for error context.
const (
	opFirst = "First"
	opNth   = "Nth"
)

// seedPrimes are the primes below 100; they cover the common low-dimensional
// cases without running the sieve at all.
var seedPrimes = [...]int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97,
}

// table is the process-wide prime cache.
//   - primes holds every prime ≤ limit, ascending.
//   - Only ensure mutates it, under mu's write lock.
type table struct {
	mu     sync.RWMutex
	primes []int
	limit  int
}

var shared = newTable()

func newTable() *table {
	p := make([]int, len(seedPrimes))
	copy(p, seedPrimes[:])
	return &table{primes: p, limit: 100}
}

// First returns the first n primes in ascending order.
//
// Errors:
//   - ErrInvalidCount if n < 1 or n > MaxCount.
//
// Complexity: O(n) on a warm cache; see package doc for extension cost.
func First(n int) ([]int, error) {
	if n < 1 || n > MaxCount {
		return nil, primeErrorf(opFirst, n, ErrInvalidCount)
	}
	return shared.first(n), nil
}

// Nth returns the k-th prime, 0-based: Nth(0) == 2, Nth(1) == 3.
//
// Errors:
//   - ErrInvalidCount if k < 0 or k >= MaxCount.
func Nth(k int) (int, error) {
	if k < 0 || k >= MaxCount {
		return 0, primeErrorf(opNth, k, ErrInvalidCount)
	}
	shared.ensure(k + 1)

	shared.mu.RLock()
	defer shared.mu.RUnlock()
	return shared.primes[k], nil
}

// IsPrime reports whether v is prime using 6k±1 trial division.
func IsPrime(v int) bool {
	if v < 2 {
		return false
	}
	if v < 4 {
		return true
	}
	if v%2 == 0 || v%3 == 0 {
		return false
	}
	for i := 5; i*i <= v; i += 6 {
		if v%i == 0 || v%(i+2) == 0 {
			return false
		}
	}
	return true
}

// first copies the leading n primes out of the cache, extending it if needed.
func (t *table) first(n int) []int {
	t.ensure(n)

	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]int, n)
	copy(out, t.primes[:n])
	return out
}

// ensure guarantees that at least n primes are cached.
// Fast path is a read-locked length check; the slow path re-checks under the
// write lock so concurrent callers extend only once.
func (t *table) ensure(n int) {
	t.mu.RLock()
	have := len(t.primes)
	t.mu.RUnlock()
	if have >= n {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.primes) >= n {
		return
	}
	limit := upperBound(n)
	if limit <= t.limit {
		limit = 2 * t.limit
	}
	for {
		primes := sieve(limit)
		if len(primes) >= n {
			t.primes, t.limit = primes, limit
			return
		}
		// The analytic bound holds for n ≥ 6; doubling covers anything else.
		limit *= 2
	}
}

// upperBound returns a bound L with p_n ≤ L (Rosser's theorem for n ≥ 6:
// p_n < n(ln n + ln ln n)).
func upperBound(n int) int {
	if n < 6 {
		return 16
	}
	x := float64(n)
	return int(x*(math.Log(x)+math.Log(math.Log(x)))) + 1
}

// sieve returns all primes ≤ limit with the sieve of Eratosthenes.
func sieve(limit int) []int {
	composite := make([]bool, limit+1)
	// π(L) ≈ L/ln L; a slightly generous capacity avoids regrowth.
	out := make([]int, 0, int(1.2*float64(limit)/math.Log(float64(limit)))+8)
	for i := 2; i <= limit; i++ {
		if composite[i] {
			continue
		}
		out = append(out, i)
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return out
}
