// SPDX-License-Identifier: MIT
// Package: halton/pointset
//
// set.go — row-major point storage & safe accessors.
//
// Purpose:
//   - Hold n points of dimension d in one flat buffer (offset = i*d + j).
//   - Public accessors return errors instead of panicking.
//   - Wrap lets a generator fill a caller-owned buffer and view it as a Set
//     without copying.
//
// Complexity quicksheet:
//   - New: O(n*d) zero-init; At: O(1); Row: O(1) view; Column: O(n) copy.

package pointset

import (
	"fmt"
	"strings"
)

// Method tags used in error wrappers.
const (
	ctxAt     = "At"
	ctxRow    = "Row"
	ctxColumn = "Column"
	opNew     = "New"
	opWrap    = "Wrap"
	opFrom    = "FromRows"
)

// Set is a batch of n points in d dimensions stored row-major.
type Set struct {
	n, d int       // point count (>=0) and dimension (>=1)
	data []float64 // len == n*d
}

var _ fmt.Stringer = (*Set)(nil)

// New allocates a zeroed set of n points in d dimensions.
// n == 0 is legal (an empty draw); d must be at least 1.
//
// Errors:
//   - ErrBadShape if n < 0 or d < 1.
func New(n, d int) (*Set, error) {
	if n < 0 || d < 1 {
		return nil, opErrorf(opNew, ErrBadShape)
	}
	return &Set{n: n, d: d, data: make([]float64, n*d)}, nil
}

// Wrap views data as a row-major set of dimension d without copying.
// Later writes to data are visible through the Set.
//
// Errors:
//   - ErrBadShape if d < 1 or len(data) is not a multiple of d.
func Wrap(data []float64, d int) (*Set, error) {
	if d < 1 || len(data)%d != 0 {
		return nil, opErrorf(opWrap, ErrBadShape)
	}
	return &Set{n: len(data) / d, d: d, data: data}, nil
}

// FromRows copies rows into a new set. All rows must share one length ≥ 1.
//
// Errors:
//   - ErrEmpty if rows is empty (the dimension would be unknown).
//   - ErrBadShape if the first row is empty.
//   - ErrDimensionMismatch if any row differs in length from the first.
func FromRows(rows [][]float64) (*Set, error) {
	if len(rows) == 0 {
		return nil, opErrorf(opFrom, ErrEmpty)
	}
	d := len(rows[0])
	if d == 0 {
		return nil, opErrorf(opFrom, ErrBadShape)
	}
	s := &Set{n: len(rows), d: d, data: make([]float64, len(rows)*d)}
	for i, r := range rows {
		if len(r) != d {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", opFrom, i, len(r), d, ErrDimensionMismatch)
		}
		copy(s.data[i*d:], r)
	}
	return s, nil
}

// Len returns the number of points.
func (s *Set) Len() int { return s.n }

// Dim returns the dimension of every point.
func (s *Set) Dim() int { return s.d }

// Data exposes the flat row-major buffer (len == Len()*Dim()).
func (s *Set) Data() []float64 { return s.data }

// At returns coordinate j of point i.
//
// Errors:
//   - ErrOutOfRange for invalid indices.
func (s *Set) At(i, j int) (float64, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.d {
		return 0, setErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	return s.data[i*s.d+j], nil
}

// Row returns point i as a view into the buffer (no copy).
//
// Errors:
//   - ErrOutOfRange if i is invalid.
func (s *Set) Row(i int) ([]float64, error) {
	if i < 0 || i >= s.n {
		return nil, setErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	off := i * s.d
	return s.data[off : off+s.d : off+s.d], nil
}

// Column copies dimension j of every point.
//
// Errors:
//   - ErrOutOfRange if j is invalid.
func (s *Set) Column(j int) ([]float64, error) {
	if j < 0 || j >= s.d {
		return nil, setErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		out[i] = s.data[i*s.d+j]
	}
	return out, nil
}

// Points returns per-point views into the buffer.
func (s *Set) Points() [][]float64 {
	out := make([][]float64, s.n)
	for i := range out {
		off := i * s.d
		out[i] = s.data[off : off+s.d : off+s.d]
	}
	return out
}

// String renders one bracketed point per line.
func (s *Set) String() string {
	var sb strings.Builder
	for i := 0; i < s.n; i++ {
		sb.WriteString("[")
		for j := 0; j < s.d; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", s.data[i*s.d+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
