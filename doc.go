// Package proxi provides a high-throughput exact nearest-neighbor search
// engine for dense float32 vectors.
//
// An Engine holds one immutable vector database at a time and answers
// batched top-k queries against it:
//
//   - Exact ("flat") search: every query is scored against every row
//   - Metrics: squared L2 (default), L2, inner product, cosine
//   - Deterministic results: ties broken by lowest row index, identical
//     output for any worker count
//   - Parallel scans partitioned across queries or row ranges, sized to the
//     host CPU
//   - SIMD-friendly kernels with a float64-accumulating default and an
//     opt-in float32 fast path (AVX2/AVX-512 on amd64, NEON on arm64)
//   - Structured logging (log/slog), pluggable metrics, admission control
//
// # Quick Start
//
//	ctx := context.Background()
//	eng := proxi.New()
//	defer eng.Close()
//
//	// Four 2-dimensional vectors in one flat row-major buffer.
//	vectors := []float32{
//	    0, 0,
//	    1, 0,
//	    0, 1,
//	    5, 5,
//	}
//	if err := eng.LoadDatabase(ctx, vectors, 4, 2); err != nil {
//	    panic(err)
//	}
//
//	neighbors, err := eng.SearchVector(ctx, []float32{0.2, 0.1}, 2)
//	if err != nil {
//	    panic(err)
//	}
//	for _, n := range neighbors {
//	    fmt.Printf("row %d at distance %g\n", n.Index, n.Score)
//	}
//
// # Batches and Options
//
// Search takes a whole batch of queries in one flat buffer plus per-call
// options:
//
//	batch, _ := proxi.NewQueryBatch(queries, 64, 128)
//	result, err := eng.Search(ctx, batch, 10, func(o *proxi.SearchOptions) {
//	    o.Metric = distance.MetricCosine
//	    o.NumWorkers = 4
//	})
//
// # Determinism
//
// For a given database, query batch, metric, and precision the engine
// returns identical results on every call, no matter how many workers run
// the scan or how the scan is partitioned. Score ties resolve to the lower
// row index. Loading a new database never disturbs searches already in
// flight; they finish against the snapshot they started with.
package proxi
