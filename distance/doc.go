// Package distance provides the metric kernels used to score vector pairs.
//
// # Supported Metrics
//
//   - MetricSquaredL2: squared Euclidean distance (default)
//   - MetricL2: Euclidean distance
//   - MetricDot: inner product
//   - MetricCosine: cosine similarity (zero-norm vectors score 0)
//
// # Precision
//
// Every metric is available in two accumulation modes:
//
//   - PrecisionHigh (default): accumulates in float64 so high-dimensional
//     sums stay well conditioned.
//   - PrecisionFast: accumulates in float32 lock-step using the kernels in
//     internal/simd (unrolled on amd64, NEON via vek on arm64).
//
// Norms always accumulate in float64; Precision selects the width of the
// dot/distance accumulation only.
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	sim := distance.Cosine(a, b)
//
//	fn, err := distance.Provider(distance.MetricDot, distance.PrecisionFast)
package distance
