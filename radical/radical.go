// SPDX-License-Identifier: MIT
// Package: halton/radical

// Package radical computes scrambled radical inverses: the reflection of an
// integer's base-b digit expansion across the radix point, with every digit
// remapped through a permutation table first.
//
// For index n = Σ d_i·b^i (d_0 least significant) and permutation π:
//
//	φ_b,π(n) = Σ π(d_i) · b^−(i+1)
//
// The sum is evaluated by Horner's rule from the most significant digit,
// v ← (v + π(d_i)) / b, which keeps every intermediate value below 1 and
// rounds once per digit. Indices up to 2^52 map to distinct float64 values
// for any base; the result is clamped to the largest float64 below 1.
//
// Inputs are not validated here: callers guarantee base ≥ 2 and that perm
// is a bijection on {0, …, base−1} (see package permutation).
package radical

// MaxDigits is the longest expansion of a uint64 (base 2).
const MaxDigits = 64

// belowOne is the largest float64 strictly less than 1.
const belowOne = 1 - 1.0/(1<<53)

// Digits appends the base-b digits of index to dst[:0], least significant
// first, and returns the extended slice. Index 0 has no digits.
// Complexity: O(log_b index).
func Digits(index uint64, base int, dst []int) []int {
	dst = dst[:0]
	b := uint64(base)
	for index > 0 {
		dst = append(dst, int(index%b))
		index /= b
	}
	return dst
}

// Inverse returns φ_base,perm(index) in [0, 1). Inverse(0, …) == 0.
// Allocation-free; safe for concurrent use with shared read-only perm.
func Inverse(index uint64, base int, perm []int) float64 {
	var buf [MaxDigits]int
	return fromDigits(Digits(index, base, buf[:0]), base, perm)
}

// fromDigits reconstructs the fraction from LSD-first digits.
func fromDigits(digits []int, base int, perm []int) float64 {
	b := float64(base)
	v := 0.0
	for i := len(digits) - 1; i >= 0; i-- {
		v = (v + float64(perm[digits[i]])) / b
	}
	if v >= 1 {
		return belowOne
	}
	return v
}
