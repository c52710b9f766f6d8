// Package testutil provides testing utilities for Proxi.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic thread-safe RNG for generating flat row-major
// vector buffers, and an independent brute-force oracle for verifying search
// results.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	data := rng.UniformVectors(1000, 128) // flat buffer, values in [-1, 1)
//
// # Exact Search (Ground Truth)
//
//	want := testutil.BruteForceSearch(data, 1000, 128, query, 10, distance.MetricCosine)
//
// The oracle scores rows with its own float64 scalar loops, sorting with the
// engine's tie-break (best score first, then ascending index), so engine
// results can be compared against it entry for entry.
package testutil
