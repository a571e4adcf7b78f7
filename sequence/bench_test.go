package sequence_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/halton/sequence"
)

// BenchmarkNext measures sequential draws across dimensionalities.
func BenchmarkNext(b *testing.B) {
	for _, d := range []int{2, 32, 256} {
		b.Run(fmt.Sprintf("D=%d", d), func(b *testing.B) {
			g, err := sequence.New(d)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := g.Next(64); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkNextInto measures the allocation-free path.
func BenchmarkNextInto(b *testing.B) {
	g, err := sequence.New(32)
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]float64, 64*32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.NextInto(buf); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSeek measures random access far into the sequence.
func BenchmarkSeek(b *testing.B) {
	g, err := sequence.New(32)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Seek(1<<30+i, 64); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParallel measures the fan-out over 64k points.
func BenchmarkParallel(b *testing.B) {
	g, err := sequence.New(16)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sequence.Parallel(ctx, g, 0, 1<<16, 0); err != nil {
			b.Fatal(err)
		}
	}
}
