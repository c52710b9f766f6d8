// Package simd provides the float32 kernels behind the distance package.
//
// # Implementations
//
//   - amd64: 8-way unrolled loops with independent partial sums, keeping the
//     FP pipeline busy on superscalar cores (AVX2/FMA capable CPUs).
//   - arm64: github.com/viterin/vek (NEON accelerated).
//   - other: portable Go loops.
//
// Runtime CPU feature detection selects the implementation at package init.
// Set PROXI_SIMD=generic to force the portable fallback.
//
// # Operations
//
//   - Pairwise: Dot, SquaredL2
//   - Batch: DotBatch, SquaredL2Batch (one query against many rows)
//
// All kernels accumulate in float32. Callers that need float64 accumulation
// (the engine's default precision) use the reference kernels in the distance
// package instead.
package simd
