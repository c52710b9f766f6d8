package engine

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/BiradarSiddhant02/Proxi/distance"
	"github.com/BiradarSiddhant02/Proxi/testutil"
	"github.com/BiradarSiddhant02/Proxi/vectorstore"
)

func benchStore(b *testing.B, count, dim int) (*Coordinator, []float32) {
	b.Helper()

	rng := testutil.NewRNG(42)
	store, err := vectorstore.New(rng.UniformVectors(count, dim), count, dim)
	if err != nil {
		b.Fatal(err)
	}
	return NewCoordinator(store), rng.UniformVectors(64, dim)
}

// BenchmarkSearchSingleQuery measures one query scanning the full store,
// which exercises the row-range partitioning axis.
func BenchmarkSearchSingleQuery(b *testing.B) {
	const k = 10
	ctx := context.Background()

	for _, size := range []struct{ count, dim int }{
		{10_000, 128},
		{100_000, 128},
	} {
		c, queries := benchStore(b, size.count, size.dim)

		for _, m := range []distance.Metric{distance.MetricSquaredL2, distance.MetricCosine} {
			name := fmt.Sprintf("%dx%d/%s", size.count, size.dim, m)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()

				for i := 0; i < b.N; i++ {
					q := queries[(i%64)*size.dim : (i%64+1)*size.dim]
					if _, err := c.Search(ctx, q, 1, k, Options{Metric: m}); err != nil {
						b.Fatal(err)
					}
				}
				b.ReportMetric(float64(b.N)/b.Elapsed().Seconds(), "qps")
			})
		}
	}
}

// BenchmarkSearchBatch measures a large batch, which exercises the
// query-partitioning axis.
func BenchmarkSearchBatch(b *testing.B) {
	const (
		count = 50_000
		dim   = 128
		nq    = 64
		k     = 10
	)
	ctx := context.Background()

	rng := testutil.NewRNG(42)
	store, err := vectorstore.New(rng.UniformVectors(count, dim), count, dim)
	if err != nil {
		b.Fatal(err)
	}
	c := NewCoordinator(store)
	queries := rng.UniformVectors(nq, dim)

	for _, workers := range []int{1, 4, runtime.GOMAXPROCS(0)} {
		b.Run(fmt.Sprintf("workers-%d", workers), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := c.Search(ctx, queries, nq, k, Options{Workers: workers}); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(float64(b.N)*nq/b.Elapsed().Seconds(), "qps")
		})
	}
}

// BenchmarkSearchPrecision compares the float64 reference kernels against
// the float32 platform kernels.
func BenchmarkSearchPrecision(b *testing.B) {
	const (
		count = 50_000
		dim   = 128
		k     = 10
	)
	ctx := context.Background()
	c, queries := benchStore(b, count, dim)

	for _, p := range []distance.Precision{distance.PrecisionHigh, distance.PrecisionFast} {
		b.Run(p.String(), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				q := queries[(i%64)*dim : (i%64+1)*dim]
				if _, err := c.Search(ctx, q, 1, k, Options{Precision: p}); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(float64(b.N)/b.Elapsed().Seconds(), "qps")
		})
	}
}
