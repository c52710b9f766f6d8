package main

import (
	"context"
	"fmt"
	"log"
	"time"

	proxi "github.com/BiradarSiddhant02/Proxi"
	"github.com/BiradarSiddhant02/Proxi/distance"
	"github.com/BiradarSiddhant02/Proxi/testutil"
)

func main() {
	seed := int64(4711)
	dim := 128
	size := 100_000
	k := 10

	ctx := context.Background()

	eng := proxi.New()
	defer eng.Close()

	rng := testutil.NewRNG(seed)

	fmt.Println("--- Load ---")
	fmt.Println("Dimension:", dim)
	fmt.Println("Size:", size)

	start := time.Now()
	if err := eng.LoadDatabase(ctx, rng.UniformVectors(size, dim), size, dim); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Seconds: %.2f\n\n", time.Since(start).Seconds())

	stats := eng.Stats()
	fmt.Printf("Kernel: %s (accelerated=%v)\n", stats.Kernel.ISA, stats.Kernel.Accelerated)
	fmt.Printf("Memory: %.1f MiB\n\n", float64(stats.SizeBytes)/(1024*1024))

	query := rng.UniformVectors(1, dim)

	fmt.Println("--- Squared L2 ---")
	search(ctx, eng, query, k, distance.MetricSquaredL2, distance.PrecisionHigh)

	fmt.Println("--- Cosine ---")
	search(ctx, eng, query, k, distance.MetricCosine, distance.PrecisionHigh)

	fmt.Println("--- Squared L2, fast kernels ---")
	search(ctx, eng, query, k, distance.MetricSquaredL2, distance.PrecisionFast)
}

func search(ctx context.Context, eng *proxi.Engine, query []float32, k int, m distance.Metric, p distance.Precision) {
	start := time.Now()

	neighbors, err := eng.SearchVector(ctx, query, k, func(o *proxi.SearchOptions) {
		o.Metric = m
		o.Precision = p
	})
	if err != nil {
		log.Fatal(err)
	}

	elapsed := time.Since(start)

	for _, n := range neighbors {
		fmt.Printf("Row: %d, Score: %.4f\n", n.Index, n.Score)
	}
	fmt.Printf("Seconds: %.8f\n\n", elapsed.Seconds())
}
