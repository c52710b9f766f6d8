package distance

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Simple", []float32{1, 2, 3}, []float32{4, 5, 6}, 32},
		{"Zero", []float32{0, 0, 0}, []float32{0, 0, 0}, 0},
		{"Mixed", []float32{1, -1, 2}, []float32{1, 1, -2}, -4},
		{"Empty", []float32{}, []float32{}, 0},
		{"Single", []float32{2}, []float32{3}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Dot(tt.a, tt.b), 1e-5)
		})
	}
}

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Simple", []float32{1, 2, 3}, []float32{4, 5, 6}, 27},
		{"Zero", []float32{0, 0, 0}, []float32{0, 0, 0}, 0},
		{"Identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 0},
		{"Mixed", []float32{1, -1}, []float32{-1, 1}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SquaredL2(tt.a, tt.b), 1e-5)
		})
	}
}

func TestL2(t *testing.T) {
	assert.InDelta(t, math.Sqrt(27), L2([]float32{1, 2, 3}, []float32{4, 5, 6}), 1e-5)
	assert.InDelta(t, 0, L2([]float32{1, 2}, []float32{1, 2}), 1e-5)
	assert.InDelta(t, 5, L2([]float32{0, 0}, []float32{3, 4}), 1e-5)
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Identical direction", []float32{1, 2, 3}, []float32{2, 4, 6}, 1},
		{"Orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"Opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"General", []float32{1, 2, 3}, []float32{4, 5, 6}, 0.9746318},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Cosine(tt.a, tt.b), 1e-5)
		})
	}

	t.Run("zero norm scores 0, not NaN", func(t *testing.T) {
		got := Cosine([]float32{0, 0, 0}, []float32{1, 2, 3})
		require.False(t, math.IsNaN(float64(got)))
		assert.Equal(t, float32(0), got)

		got = Cosine([]float32{1, 2, 3}, []float32{0, 0, 0})
		assert.Equal(t, float32(0), got)

		got = Cosine([]float32{0, 0}, []float32{0, 0})
		assert.Equal(t, float32(0), got)
	})
}

func TestNorm(t *testing.T) {
	assert.InDelta(t, 5, Norm([]float32{3, 4}), 1e-6)
	assert.InDelta(t, 0, Norm([]float32{0, 0, 0}), 1e-6)
	assert.InDelta(t, 1, Norm([]float32{1}), 1e-6)
	assert.InDelta(t, 0, Norm(nil), 1e-6)
}

func TestCosineFromDot(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}
	got := CosineFromDot(Dot(a, b), Norm(a), Norm(b))
	assert.InDelta(t, Cosine(a, b), got, 1e-6)

	assert.Equal(t, float32(0), CosineFromDot(3, 0, 1))
	assert.Equal(t, float32(0), CosineFromDot(3, 1, 0))
}

func TestNormalize(t *testing.T) {
	t.Run("in place", func(t *testing.T) {
		v := []float32{3, 4}
		require.True(t, NormalizeL2InPlace(v))
		assert.InDelta(t, 0.6, v[0], 1e-6)
		assert.InDelta(t, 0.8, v[1], 1e-6)
		assert.InDelta(t, 1, Norm(v), 1e-6)
	})

	t.Run("zero norm", func(t *testing.T) {
		v := []float32{0, 0}
		assert.False(t, NormalizeL2InPlace(v))
		assert.False(t, NormalizeL2InPlace(nil))
	})

	t.Run("copy", func(t *testing.T) {
		src := []float32{0, 5}
		dst, ok := NormalizeL2Copy(src)
		require.True(t, ok)
		assert.Equal(t, []float32{0, 5}, src)
		assert.InDelta(t, 1, dst[1], 1e-6)

		_, ok = NormalizeL2Copy([]float32{0, 0})
		assert.False(t, ok)
	})
}

func TestProviderMatchesScalars(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const dim = 256

	a := make([]float32, dim)
	b := make([]float32, dim)
	for i := 0; i < dim; i++ {
		a[i] = rng.Float32()*2 - 1
		b[i] = rng.Float32()*2 - 1
	}

	// Fast kernels accumulate in float32; agreement with the float64
	// reference is up to rounding, not bit-exact.
	const fastTolerance = 1e-2

	for _, m := range []Metric{MetricSquaredL2, MetricL2, MetricDot, MetricCosine} {
		t.Run(m.String(), func(t *testing.T) {
			high, err := Provider(m, PrecisionHigh)
			require.NoError(t, err)

			fast, err := Provider(m, PrecisionFast)
			require.NoError(t, err)

			assert.InDelta(t, high(a, b), fast(a, b), fastTolerance)
		})
	}

	t.Run("unsupported metric", func(t *testing.T) {
		_, err := Provider(Metric(200), PrecisionHigh)
		var target *ErrUnsupportedMetric
		require.ErrorAs(t, err, &target)
		assert.Equal(t, Metric(200), target.Metric)
	})

	t.Run("invalid precision", func(t *testing.T) {
		_, err := Provider(MetricDot, Precision(200))
		var target *ErrInvalidPrecision
		require.ErrorAs(t, err, &target)
	})
}

func TestBatchKernels(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const dim = 33
	const rows = 17

	query := make([]float32, dim)
	targets := make([]float32, dim*rows)
	for i := range query {
		query[i] = rng.Float32()*2 - 1
	}
	for i := range targets {
		targets[i] = rng.Float32()*2 - 1
	}

	for _, p := range []Precision{PrecisionHigh, PrecisionFast} {
		t.Run("dot/"+p.String(), func(t *testing.T) {
			fn, err := Provider(MetricDot, p)
			require.NoError(t, err)

			out := make([]float32, rows)
			BatchDot(p)(query, targets, dim, out)

			for i := 0; i < rows; i++ {
				assert.InDelta(t, fn(query, targets[i*dim:(i+1)*dim]), out[i], 1e-6, "row %d", i)
			}
		})

		t.Run("squared_l2/"+p.String(), func(t *testing.T) {
			fn, err := Provider(MetricSquaredL2, p)
			require.NoError(t, err)

			out := make([]float32, rows)
			BatchSquaredL2(p)(query, targets, dim, out)

			for i := 0; i < rows; i++ {
				assert.InDelta(t, fn(query, targets[i*dim:(i+1)*dim]), out[i], 1e-6, "row %d", i)
			}
		})
	}
}

func TestActiveKernel(t *testing.T) {
	info := ActiveKernel()
	assert.NotEmpty(t, info.ISA)
	if info.Accelerated {
		assert.NotEmpty(t, info.Features)
	}
}
