package radical_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/halton/permutation"
	"github.com/katalvlaran/halton/radical"
)

// identity returns the unscrambled table for b.
func identity(b int) []int {
	t := make([]int, b)
	for i := range t {
		t[i] = i
	}
	return t
}

// TestInverse_VanDerCorputBase2 pins the classical base-2 sequence.
func TestInverse_VanDerCorputBase2(t *testing.T) {
	t.Parallel()

	want := []float64{0, 0.5, 0.25, 0.75, 0.125, 0.625, 0.375, 0.875}
	perm := identity(2)
	for i, w := range want {
		assert.Equal(t, w, radical.Inverse(uint64(i), 2, perm), "index %d", i)
	}
}

// TestInverse_Base3 checks thirds and ninths against the digit-sum definition.
func TestInverse_Base3(t *testing.T) {
	t.Parallel()

	perm := identity(3)
	want := []float64{0, 1.0 / 3, 2.0 / 3, 1.0 / 9, 4.0 / 9, 7.0 / 9, 2.0 / 9}
	for i, w := range want {
		assert.InDelta(t, w, radical.Inverse(uint64(i), 3, perm), 1e-15, "index %d", i)
	}
}

// TestInverse_Scrambled applies σ_5 = (0 3 2 1 4) by hand.
func TestInverse_Scrambled(t *testing.T) {
	t.Parallel()

	perm, err := permutation.For(5, permutation.Scrambled)
	require.NoError(t, err)

	// 7 = 2 + 1·5 → digits (2, 1) → σ: (2, 3) → 2/5 + 3/25.
	assert.InDelta(t, 2.0/5+3.0/25, radical.Inverse(7, 5, perm), 1e-15)
	// 1 → digit 1 → σ(1) = 3 → 3/5.
	assert.InDelta(t, 3.0/5, radical.Inverse(1, 5, perm), 1e-15)
}

// TestInverse_ZeroEverywhere covers the index-0 boundary for many bases,
// including a user table that does not fix digit 0.
func TestInverse_ZeroEverywhere(t *testing.T) {
	t.Parallel()

	for _, b := range []int{2, 3, 5, 7, 97, 7919} {
		assert.Equal(t, 0.0, radical.Inverse(0, b, identity(b)), "base %d", b)
	}
	assert.Equal(t, 0.0, radical.Inverse(0, 3, []int{2, 0, 1}))
}

// TestInverse_RangeAndDistinct checks [0,1) and collision freedom on a prefix.
func TestInverse_RangeAndDistinct(t *testing.T) {
	t.Parallel()

	for _, b := range []int{2, 3, 7, 31} {
		perm, err := permutation.For(b, permutation.Scrambled)
		require.NoError(t, err)
		seen := make(map[float64]uint64, 4096)
		for i := uint64(0); i < 4096; i++ {
			v := radical.Inverse(i, b, perm)
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
			prev, dup := seen[v]
			require.False(t, dup, "base %d: index %d collides with %d", b, i, prev)
			seen[v] = i
		}
	}
}

// TestInverse_LargeIndices stays below one at the top of the uint64 range.
func TestInverse_LargeIndices(t *testing.T) {
	t.Parallel()

	perm := identity(2)
	v := radical.Inverse(math.MaxUint64, 2, perm)
	assert.Less(t, v, 1.0)
	assert.Greater(t, v, 0.999)

	a := radical.Inverse(1<<52, 3, identity(3))
	b := radical.Inverse(1<<52+1, 3, identity(3))
	assert.NotEqual(t, a, b)
}

// TestDigits checks LSD-first decomposition and slice reuse.
func TestDigits(t *testing.T) {
	t.Parallel()

	buf := make([]int, 0, 8)
	assert.Equal(t, []int{}, radical.Digits(0, 10, buf))
	assert.Equal(t, []int{3, 2, 1}, radical.Digits(123, 10, buf))
	assert.Equal(t, []int{1, 0, 1, 1}, radical.Digits(13, 2, buf))
	assert.Len(t, radical.Digits(math.MaxUint64, 2, nil), radical.MaxDigits)
}

// TestCounter_MatchesInverse verifies bit-identical odometer output.
func TestCounter_MatchesInverse(t *testing.T) {
	t.Parallel()

	for _, b := range []int{2, 3, 5, 11} {
		perm, err := permutation.For(b, permutation.Scrambled)
		require.NoError(t, err)

		c := radical.NewCounter(b)
		assert.Equal(t, b, c.Base())
		for i := uint64(0); i < 2000; i++ {
			require.Equal(t, i, c.Index())
			require.Equal(t, radical.Inverse(i, b, perm), c.Value(perm), "base %d index %d", b, i)
			c.Inc()
		}
	}
}

// TestCounter_Set jumps and continues from an arbitrary index.
func TestCounter_Set(t *testing.T) {
	t.Parallel()

	perm := identity(3)
	c := radical.NewCounter(3)
	c.Set(80) // 2222 in base 3
	assert.Equal(t, radical.Inverse(80, 3, perm), c.Value(perm))
	c.Inc()
	assert.Equal(t, uint64(81), c.Index())
	assert.Equal(t, radical.Inverse(81, 3, perm), c.Value(perm))

	c.Set(0)
	assert.Equal(t, 0.0, c.Value(perm))
}
