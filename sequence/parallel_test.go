package sequence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/halton/sequence"
)

// TestPartition covers balanced splits and degenerate inputs.
func TestPartition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                string
		start, count, parts int
		want                []sequence.Range
	}{
		{"even", 0, 9, 3, []sequence.Range{{0, 3}, {3, 3}, {6, 3}}},
		{"remainder first", 10, 8, 3, []sequence.Range{{10, 3}, {13, 3}, {16, 2}}},
		{"more parts than points", 5, 2, 4, []sequence.Range{{5, 1}, {6, 1}}},
		{"single", 1, 4, 1, []sequence.Range{{1, 4}}},
		{"empty", 3, 0, 2, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := sequence.Partition(tc.start, tc.count, tc.parts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestPartition_Errors rejects negative or meaningless arguments.
func TestPartition_Errors(t *testing.T) {
	t.Parallel()

	_, err := sequence.Partition(-1, 4, 2)
	assert.ErrorIs(t, err, sequence.ErrInvalidIndex)
	_, err = sequence.Partition(0, -4, 2)
	assert.ErrorIs(t, err, sequence.ErrInvalidCount)
	_, err = sequence.Partition(0, 4, 0)
	assert.ErrorIs(t, err, sequence.ErrInvalidCount)
}

// TestParallel_MatchesSeek compares the fan-out with a single Seek.
func TestParallel_MatchesSeek(t *testing.T) {
	t.Parallel()

	g, err := sequence.New(6, sequence.WithSeed(11))
	require.NoError(t, err)

	want, err := g.Seek(100, 1000)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 3, 16} {
		got, err := sequence.Parallel(context.Background(), g, 100, 1000, workers)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
	assert.Equal(t, 0, g.Cursor())
}

// TestParallel_Cancelled returns the context error and no points.
func TestParallel_Cancelled(t *testing.T) {
	t.Parallel()

	g, err := sequence.New(2)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pts, err := sequence.Parallel(ctx, g, 0, 64, 4)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, pts)
}

// TestParallel_Errors forwards range validation.
func TestParallel_Errors(t *testing.T) {
	t.Parallel()

	g, err := sequence.New(2)
	require.NoError(t, err)

	_, err = sequence.Parallel(context.Background(), g, -1, 4, 2)
	assert.ErrorIs(t, err, sequence.ErrInvalidIndex)
	_, err = sequence.Parallel(context.Background(), g, 0, -4, 2)
	assert.ErrorIs(t, err, sequence.ErrInvalidCount)

	empty, err := sequence.Parallel(context.Background(), g, 0, 0, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
