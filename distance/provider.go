package distance

import (
	"math"

	"github.com/BiradarSiddhant02/Proxi/internal/simd"
)

// Func scores one (query, row) pair.
type Func func(a, b []float32) float32

// BatchFunc scores query against every dim-sized row in targets, writing one
// value per row into out. len(out) rows are scored.
type BatchFunc func(query, targets []float32, dim int, out []float32)

// Provider returns the scoring function for the given metric and precision.
//
// The returned Func computes the metric's natural value: distances for the L2
// family, similarities for dot and cosine. Direction handling (smaller vs.
// larger is better) is the caller's concern.
func Provider(m Metric, p Precision) (Func, error) {
	if !p.Valid() {
		return nil, &ErrInvalidPrecision{Precision: p}
	}

	fast := p == PrecisionFast

	switch m {
	case MetricSquaredL2:
		if fast {
			return simd.SquaredL2, nil
		}
		return SquaredL2, nil
	case MetricL2:
		if fast {
			return l2Fast, nil
		}
		return L2, nil
	case MetricDot:
		if fast {
			return simd.Dot, nil
		}
		return Dot, nil
	case MetricCosine:
		if fast {
			return cosineFast, nil
		}
		return Cosine, nil
	default:
		return nil, &ErrUnsupportedMetric{Metric: m}
	}
}

// BatchDot returns the batched dot kernel for the given precision.
// Precisions other than PrecisionFast use the float64 reference path.
func BatchDot(p Precision) BatchFunc {
	if p == PrecisionFast {
		return simd.DotBatch
	}
	return dotBatchHigh
}

// BatchSquaredL2 returns the batched squared L2 kernel for the given
// precision. Precisions other than PrecisionFast use the float64 reference
// path.
func BatchSquaredL2(p Precision) BatchFunc {
	if p == PrecisionFast {
		return simd.SquaredL2Batch
	}
	return squaredL2BatchHigh
}

// KernelInfo describes the platform kernel backing PrecisionFast.
type KernelInfo struct {
	// ISA is the active instruction set ("generic", "neon", "avx2", "avx512").
	ISA string
	// Features lists the detected CPU features.
	Features []string
	// Accelerated is false when the portable Go loops are in use.
	Accelerated bool
}

// ActiveKernel reports which platform kernel PrecisionFast dispatches to.
func ActiveKernel() KernelInfo {
	info := simd.Info()
	return KernelInfo{
		ISA:         info.ISA,
		Features:    info.Features,
		Accelerated: info.Accelerated,
	}
}

func l2Fast(a, b []float32) float32 {
	return float32(math.Sqrt(float64(simd.SquaredL2(a, b))))
}

// cosineFast pairs the fast dot product with float64-accumulated norms,
// matching what the search path does with cached row norms.
func cosineFast(a, b []float32) float32 {
	return CosineFromDot(simd.Dot(a, b), Norm(a), Norm(b))
}

func dotBatchHigh(query, targets []float32, dim int, out []float32) {
	if dim <= 0 || len(out) == 0 || len(query) < dim {
		return
	}
	q := query[:dim]
	n := min(len(out), len(targets)/dim)
	for i := 0; i < n; i++ {
		offset := i * dim
		out[i] = Dot(q, targets[offset:offset+dim])
	}
}

func squaredL2BatchHigh(query, targets []float32, dim int, out []float32) {
	if dim <= 0 || len(out) == 0 || len(query) < dim {
		return
	}
	q := query[:dim]
	n := min(len(out), len(targets)/dim)
	for i := 0; i < n; i++ {
		offset := i * dim
		out[i] = SquaredL2(q, targets[offset:offset+dim])
	}
}
