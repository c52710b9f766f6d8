//go:build arm64

package simd

import (
	"github.com/viterin/vek/vek32"
)

// ARM64 kernels are backed by vek, which carries NEON assembly for the
// float32 primitives used here.

// init runs after capability_arm64.go's init (files initialize in lexical
// order within a package), so activeISA is already resolved here.
func init() {
	if activeISA == NEON {
		dotImpl = dotNEON
		squaredL2Impl = squaredL2NEON
		scaleImpl = scaleNEON
	}
}

func dotNEON(a, b []float32) float32 {
	return vek32.Dot(a, b)
}

func squaredL2NEON(a, b []float32) float32 {
	// vek exposes the Euclidean distance; square it to get the squared form.
	d := vek32.Distance(a, b)
	return d * d
}

func scaleNEON(a []float32, scalar float32) {
	vek32.MulNumber_Inplace(a, scalar)
}
