// SPDX-License-Identifier: MIT
// Package: halton/pointset
//
// discrepancy.go — closed-form L2 discrepancies.
//
// Both measures are O(n²·d) and exact (no sampling); they are meant for
// validating and comparing point sets of a few thousand points.
//
//	Warnock (L2-star), T*:
//	  T*² = 3^−d − (2^(1−d)/n) Σ_i Π_k (1 − x_ik²)
//	        + (1/n²) Σ_i Σ_j Π_k (1 − max(x_ik, x_jk))
//
//	Hickernell (centered L2), CD:
//	  CD² = (13/12)^d − (2/n) Σ_i Π_k (1 + ½|x_ik−½| − ½|x_ik−½|²)
//	        + (1/n²) Σ_i Σ_j Π_k (1 + ½|x_ik−½| + ½|x_jk−½| − ½|x_ik−x_jk|)

package pointset

import "math"

const (
	opStarL2     = "StarL2"
	opCenteredL2 = "CenteredL2"
)

// StarL2 returns the L2-star discrepancy T* of s (Warnock's formula).
//
// Errors:
//   - ErrEmpty if s has no points.
func StarL2(s *Set) (float64, error) {
	if s == nil || s.n == 0 {
		return 0, opErrorf(opStarL2, ErrEmpty)
	}
	n, d := s.n, s.d

	var single float64
	for i := 0; i < n; i++ {
		p := 1.0
		for _, x := range s.data[i*d : (i+1)*d] {
			p *= 1 - x*x
		}
		single += p
	}

	var pair float64
	for i := 0; i < n; i++ {
		xi := s.data[i*d : (i+1)*d]
		for j := 0; j < n; j++ {
			xj := s.data[j*d : (j+1)*d]
			p := 1.0
			for k := 0; k < d; k++ {
				p *= 1 - math.Max(xi[k], xj[k])
			}
			pair += p
		}
	}

	fn := float64(n)
	sq := math.Pow(3, -float64(d)) - math.Pow(2, 1-float64(d))/fn*single + pair/(fn*fn)
	return math.Sqrt(math.Max(sq, 0)), nil
}

// CenteredL2 returns the centered L2 discrepancy CD of s (Hickernell).
//
// Errors:
//   - ErrEmpty if s has no points.
func CenteredL2(s *Set) (float64, error) {
	if s == nil || s.n == 0 {
		return 0, opErrorf(opCenteredL2, ErrEmpty)
	}
	n, d := s.n, s.d

	var single float64
	for i := 0; i < n; i++ {
		p := 1.0
		for _, x := range s.data[i*d : (i+1)*d] {
			a := math.Abs(x - 0.5)
			p *= 1 + 0.5*a - 0.5*a*a
		}
		single += p
	}

	var pair float64
	for i := 0; i < n; i++ {
		xi := s.data[i*d : (i+1)*d]
		for j := 0; j < n; j++ {
			xj := s.data[j*d : (j+1)*d]
			p := 1.0
			for k := 0; k < d; k++ {
				p *= 1 + 0.5*math.Abs(xi[k]-0.5) + 0.5*math.Abs(xj[k]-0.5) - 0.5*math.Abs(xi[k]-xj[k])
			}
			pair += p
		}
	}

	fn := float64(n)
	sq := math.Pow(13.0/12.0, float64(d)) - 2/fn*single + pair/(fn*fn)
	return math.Sqrt(math.Max(sq, 0)), nil
}
