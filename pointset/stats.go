// SPDX-License-Identifier: MIT
// Package: halton/pointset
//
// stats.go — per-dimension statistics over a Set.
//
// Exposed API:
//   - ColumnMeans(s) -> means      // Σ_i x[i,j] / n, fixed i→j traversal
//   - Summarize(s)   -> []Summary  // moments and quartiles per dimension
//
// For uniform coverage of [0,1) every dimension should approach mean 1/2,
// standard deviation 1/√12 ≈ 0.2887 and quartiles 1/4, 1/2, 3/4.

package pointset

import (
	"sort"

	"github.com/aclements/go-moremath/stats"
)

const (
	opColumnMeans = "ColumnMeans"
	opSummarize   = "Summarize"
)

// Summary describes one dimension of a Set.
type Summary struct {
	Dim    int     // dimension index
	Count  int     // number of points
	Mean   float64 // arithmetic mean
	StdDev float64 // sample standard deviation (n−1 denominator)
	Min    float64
	Q1     float64 // 25th percentile
	Median float64
	Q3     float64 // 75th percentile
	Max    float64
}

// ColumnMeans returns the per-dimension mean of s.
//
// Errors:
//   - ErrEmpty if s has no points.
//
// Complexity: O(n*d) time, O(d) space.
func ColumnMeans(s *Set) ([]float64, error) {
	if s == nil || s.n == 0 {
		return nil, opErrorf(opColumnMeans, ErrEmpty)
	}
	means := make([]float64, s.d)
	for i := 0; i < s.n; i++ {
		base := i * s.d
		for j := 0; j < s.d; j++ {
			means[j] += s.data[base+j]
		}
	}
	invN := 1.0 / float64(s.n)
	for j := range means {
		means[j] *= invN
	}
	return means, nil
}

// Summarize computes a Summary for every dimension of s.
//
// Errors:
//   - ErrEmpty if s has no points.
//
// Complexity: O(d · n log n) for the per-dimension sorts.
func Summarize(s *Set) ([]Summary, error) {
	if s == nil || s.n == 0 {
		return nil, opErrorf(opSummarize, ErrEmpty)
	}
	out := make([]Summary, s.d)
	for j := 0; j < s.d; j++ {
		xs, _ := s.Column(j) // j is in range by construction
		sort.Float64s(xs)
		sample := stats.Sample{Xs: xs, Sorted: true}

		lo, hi := sample.Bounds()
		out[j] = Summary{
			Dim:    j,
			Count:  s.n,
			Mean:   sample.Mean(),
			StdDev: sample.StdDev(),
			Min:    lo,
			Q1:     sample.Quantile(0.25),
			Median: sample.Quantile(0.50),
			Q3:     sample.Quantile(0.75),
			Max:    hi,
		}
	}
	return out, nil
}
