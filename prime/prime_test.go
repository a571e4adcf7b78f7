package prime_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/halton/prime"
)

// TestFirst_SmallPrefix checks the leading primes against a literal table.
func TestFirst_SmallPrefix(t *testing.T) {
	t.Parallel()

	got, err := prime.First(10)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, got)
}

// TestFirst_InvalidCount verifies both ends of the supported range.
func TestFirst_InvalidCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1, prime.MaxCount + 1} {
		_, err := prime.First(n)
		assert.ErrorIs(t, err, prime.ErrInvalidCount, "n=%d", n)
	}
}

// TestFirst_ExtendsBeyondSeed forces the sieve path and checks well-known values.
func TestFirst_ExtendsBeyondSeed(t *testing.T) {
	t.Parallel()

	got, err := prime.First(1000)
	require.NoError(t, err)
	require.Len(t, got, 1000)
	assert.Equal(t, 7919, got[999], "the 1000th prime")

	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i], "ascending at %d", i)
		assert.True(t, prime.IsPrime(got[i]), "%d is prime", got[i])
	}
}

// TestFirst_ReturnsCopy ensures callers cannot corrupt the shared table.
func TestFirst_ReturnsCopy(t *testing.T) {
	t.Parallel()

	a, err := prime.First(3)
	require.NoError(t, err)
	a[0] = 42

	b, err := prime.First(3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5}, b)
}

// TestNth covers 0-based lookup and its bounds.
func TestNth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		k    int
		want int
	}{
		{0, 2},
		{1, 3},
		{24, 97},
		{25, 101},
		{9999, 104729},
	}
	for _, tc := range tests {
		got, err := prime.Nth(tc.k)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Nth(%d)", tc.k)
	}

	_, err := prime.Nth(-1)
	assert.ErrorIs(t, err, prime.ErrInvalidCount)
	_, err = prime.Nth(prime.MaxCount)
	assert.ErrorIs(t, err, prime.ErrInvalidCount)
}

// TestIsPrime exercises small edge values and composites of the 6k±1 form.
func TestIsPrime(t *testing.T) {
	t.Parallel()

	primes := []int{2, 3, 5, 7, 29, 7919, 104729}
	composites := []int{-7, 0, 1, 4, 9, 25, 35, 49, 7917, 104731}
	for _, p := range primes {
		assert.True(t, prime.IsPrime(p), "%d", p)
	}
	for _, c := range composites {
		assert.False(t, prime.IsPrime(c), "%d", c)
	}
}

// TestFirst_Concurrent extends the table from many goroutines at once.
func TestFirst_Concurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			got, err := prime.First(n)
			assert.NoError(t, err)
			assert.Len(t, got, n)
		}(2000 + 500*w)
	}
	wg.Wait()
}
