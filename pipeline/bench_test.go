package pipeline_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/rangechain/interval"
	"github.com/katalvlaran/rangechain/pipeline"
)

// benchmarkMinValue runs point mode over n values with the given worker count.
func benchmarkMinValue(b *testing.B, n, workers int) {
	r, err := pipeline.New(sampleChain(b), pipeline.WithWorkers(workers))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	values := make([]uint64, n)
	for i := range values {
		values[i] = uint64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.MinValue(context.Background(), values); err != nil {
			b.Fatalf("MinValue failed: %v", err)
		}
	}
}

// BenchmarkMinValue_Sequential benchmarks 100k values on one goroutine.
func BenchmarkMinValue_Sequential(b *testing.B) { benchmarkMinValue(b, 100_000, 1) }

// BenchmarkMinValue_Parallel4 benchmarks 100k values on four goroutines.
func BenchmarkMinValue_Parallel4(b *testing.B) { benchmarkMinValue(b, 100_000, 4) }

// BenchmarkMinRange benchmarks range mode over a billion-value span.
func BenchmarkMinRange(b *testing.B) {
	r, err := pipeline.New(sampleChain(b))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	set := interval.Set{{Start: 0, Length: 1_000_000_000}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.MinRange(context.Background(), set); err != nil {
			b.Fatalf("MinRange failed: %v", err)
		}
	}
}
