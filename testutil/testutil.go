package testutil

import (
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/BiradarSiddhant02/Proxi/distance"
)

// Neighbor is one oracle result: a row index and its metric-natural score.
type Neighbor struct {
	Index uint32
	Score float32
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [-1, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()*2 - 1
	}
}

// UniformVectors generates a flat row-major buffer of num vectors with
// values in range [-1, 1).
func (r *RNG) UniformVectors(num, dim int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dim)
	for i := range data {
		data[i] = r.rand.Float32()*2 - 1
	}
	return data
}

// GaussianVectors generates a flat row-major buffer of num vectors with
// values from a standard normal distribution.
func (r *RNG) GaussianVectors(num, dim int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dim)
	for i := range data {
		data[i] = float32(r.rand.NormFloat64())
	}
	return data
}

// UnitVectors generates a flat row-major buffer of L2-normalized vectors
// (points on the hypersphere). Gaussian sampling keeps the distribution
// uniform over directions.
func (r *RNG) UnitVectors(num, dim int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dim)
	for i := 0; i < num; i++ {
		vec := data[i*dim : (i+1)*dim]

		var norm float64
		for j := range vec {
			v := r.rand.NormFloat64()
			vec[j] = float32(v)
			norm += v * v
		}
		if norm == 0 {
			norm = 1 // Avoid division by zero, though unlikely with floats
		}

		inv := float32(1.0 / math.Sqrt(norm))
		for j := range vec {
			vec[j] *= inv
		}
	}
	return data
}

// BruteForceSearch computes the exact top-k rows for query over a flat
// row-major buffer, independently of the engine's kernels: every score
// accumulates in plain float64 loops.
//
// Results are ordered best first (ascending for distances, descending for
// similarities) with ties broken by ascending index, and carry
// metric-natural scores.
func BruteForceSearch(data []float32, count, dim int, query []float32, k int, metric distance.Metric) []Neighbor {
	if k > count {
		k = count
	}

	scored := make([]Neighbor, count)
	for i := 0; i < count; i++ {
		row := data[i*dim : (i+1)*dim]
		scored[i] = Neighbor{Index: uint32(i), Score: scoreRow(query, row, metric)}
	}

	similarity := metric.Similarity()
	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			if similarity {
				return a.Score > b.Score
			}
			return a.Score < b.Score
		}
		return a.Index < b.Index
	})

	return scored[:k]
}

func scoreRow(query, row []float32, metric distance.Metric) float32 {
	switch metric {
	case distance.MetricL2:
		return float32(math.Sqrt(squaredL2(query, row)))
	case distance.MetricDot:
		return float32(dot(query, row))
	case distance.MetricCosine:
		return float32(cosine(query, row))
	default:
		return float32(squaredL2(query, row))
	}
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func squaredL2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

func cosine(a, b []float32) float64 {
	var dp, na, nb float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dp += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dp / math.Sqrt(na*nb)
}
