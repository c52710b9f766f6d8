package distance

import (
	"math"
	"slices"

	"github.com/BiradarSiddhant02/Proxi/internal/simd"
)

// Dot calculates the dot product of two vectors, accumulating in float64.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return float32(sum)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two
// vectors, accumulating in float64.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	return float32(squaredL2f64(a, b))
}

// L2 calculates the Euclidean distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func L2(a, b []float32) float32 {
	return float32(math.Sqrt(squaredL2f64(a, b)))
}

// Cosine calculates the cosine similarity of two vectors in a single pass.
// If either vector has zero norm the similarity is 0, not NaN.
// Assumes vectors are the same length (caller's responsibility).
func Cosine(a, b []float32) float32 {
	var dot, na, nb float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / math.Sqrt(na*nb))
}

// Norm calculates the L2 norm of v, accumulating in float64.
func Norm(v []float32) float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return float32(math.Sqrt(sum))
}

// CosineFromDot derives cosine similarity from a precomputed dot product and
// the two vector norms. If either norm is zero the similarity is 0.
//
// Search paths use this with cached row norms so the cosine metric costs one
// dot product per row instead of three.
func CosineFromDot(dot, aNorm, bNorm float32) float32 {
	if aNorm == 0 || bNorm == 0 {
		return 0
	}
	return dot / (aNorm * bNorm)
}

// NormalizeL2InPlace L2-normalizes v in place.
// Returns false if v has zero L2 norm.
func NormalizeL2InPlace(v []float32) bool {
	if len(v) == 0 {
		return false
	}
	norm := Norm(v)
	if norm == 0 {
		return false
	}
	simd.ScaleInPlace(v, 1/norm)
	return true
}

// NormalizeL2Copy returns a normalized copy of src.
// Returns false if src has zero L2 norm.
func NormalizeL2Copy(src []float32) ([]float32, bool) {
	dst := slices.Clone(src)
	if !NormalizeL2InPlace(dst) {
		return nil, false
	}
	return dst, true
}

func squaredL2f64(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
