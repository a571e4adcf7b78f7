// SPDX-License-Identifier: MIT
// Package: halton/pointset
//
// stream.go — bounded-memory quantile tracking for chunked draws.
//
// Large draws are expected to be split into chunks by the caller; a Stream
// folds each chunk into one DDSketch per dimension so quantiles can be read
// at any time without retaining the points.

package pointset

import (
	"fmt"
	"math"

	"github.com/DataDog/sketches-go/ddsketch"
)

const (
	opNewStream = "NewStream"
	opAdd       = "Stream.Add"
	opQuantiles = "Stream.Quantiles"
)

// DefaultRelativeAccuracy is the sketch accuracy used by NewStream callers
// that have no stronger requirement.
const DefaultRelativeAccuracy = 0.01

// Stream accumulates points into per-dimension quantile sketches.
// A Stream is not safe for concurrent use.
type Stream struct {
	sketches []*ddsketch.DDSketch
	count    int
}

// NewStream returns a stream for d-dimensional points whose quantile
// estimates are within relativeAccuracy of the true value.
//
// Errors:
//   - ErrBadShape if d < 1.
//   - the sketch constructor's error for an accuracy outside (0, 1).
func NewStream(d int, relativeAccuracy float64) (*Stream, error) {
	if d < 1 {
		return nil, opErrorf(opNewStream, ErrBadShape)
	}
	s := &Stream{sketches: make([]*ddsketch.DDSketch, d)}
	for j := range s.sketches {
		sk, err := ddsketch.NewDefaultDDSketch(relativeAccuracy)
		if err != nil {
			return nil, opErrorf(opNewStream, err)
		}
		s.sketches[j] = sk
	}
	return s, nil
}

// Dim returns the point dimension the stream expects.
func (s *Stream) Dim() int { return len(s.sketches) }

// Count returns how many points have been added.
func (s *Stream) Count() int { return s.count }

// Add folds one point into the sketches. Every coordinate is checked before
// any sketch is touched, so a rejected point leaves the stream unchanged.
//
// Errors:
//   - ErrDimensionMismatch if len(p) != Dim().
//   - ErrOutOfRange if a coordinate is NaN, infinite, or beyond what the
//     sketch can index.
func (s *Stream) Add(p []float64) error {
	if len(p) != len(s.sketches) {
		return fmt.Errorf("%s: point has %d values, want %d: %w", opAdd, len(p), len(s.sketches), ErrDimensionMismatch)
	}
	for j, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > s.sketches[j].MaxIndexableValue() {
			return fmt.Errorf("%s: dimension %d value %v: %w", opAdd, j, v, ErrOutOfRange)
		}
	}
	for j, v := range p {
		if err := s.sketches[j].Add(v); err != nil {
			return opErrorf(opAdd, err)
		}
	}
	s.count++
	return nil
}

// AddSet folds every point of set into the sketches.
//
// Errors:
//   - ErrDimensionMismatch if set.Dim() != Dim().
func (s *Stream) AddSet(set *Set) error {
	if set.d != len(s.sketches) {
		return fmt.Errorf("%s: set has dimension %d, want %d: %w", opAdd, set.d, len(s.sketches), ErrDimensionMismatch)
	}
	for i := 0; i < set.n; i++ {
		row, _ := set.Row(i)
		if err := s.Add(row); err != nil {
			return err
		}
	}
	return nil
}

// Quantiles returns estimates of the given quantiles (each in [0,1]) for dimension j.
//
// Errors:
//   - ErrOutOfRange if j is invalid.
//   - ErrEmpty if nothing has been added.
func (s *Stream) Quantiles(j int, qs []float64) ([]float64, error) {
	if j < 0 || j >= len(s.sketches) {
		return nil, fmt.Errorf("%s(%d): %w", opQuantiles, j, ErrOutOfRange)
	}
	if s.count == 0 {
		return nil, fmt.Errorf("%s(%d): %w", opQuantiles, j, ErrEmpty)
	}
	vals, err := s.sketches[j].GetValuesAtQuantiles(qs)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opQuantiles, j, err)
	}
	return vals, nil
}
