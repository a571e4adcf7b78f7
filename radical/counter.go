// SPDX-License-Identifier: MIT
// Package: halton/radical

package radical

// Counter is an incrementing base-b digit register (an odometer).
// Sequential draws advance it with Inc instead of re-dividing every index;
// Value yields exactly the same float64 as Inverse for the current index.
//
// A Counter is not safe for concurrent use.
type Counter struct {
	base   int
	index  uint64
	digits []int // LSD-first, no leading zeros; empty for index 0
}

// NewCounter returns a counter at index 0. base must be ≥ 2.
func NewCounter(base int) *Counter {
	return &Counter{base: base, digits: make([]int, 0, MaxDigits)}
}

// Base returns the counter's radix.
func (c *Counter) Base() int { return c.base }

// Index returns the current index.
func (c *Counter) Index() uint64 { return c.index }

// Set moves the counter to index.
func (c *Counter) Set(index uint64) {
	c.index = index
	c.digits = Digits(index, c.base, c.digits)
}

// Inc advances the counter by one. Amortized O(1).
// Wrapping past the largest uint64 is the caller's responsibility to avoid.
func (c *Counter) Inc() {
	c.index++
	top := c.base - 1
	i := 0
	for i < len(c.digits) && c.digits[i] == top {
		c.digits[i] = 0
		i++
	}
	if i == len(c.digits) {
		c.digits = append(c.digits, 1)
		return
	}
	c.digits[i]++
}

// Value returns φ_base,perm(Index()).
func (c *Counter) Value(perm []int) float64 {
	return fromDigits(c.digits, c.base, perm)
}
