//go:build amd64

package simd

// x86-64 kernels: 8-way unrolled loops with independent partial sums so the
// FP units of AVX2/FMA-class cores stay busy. Pure Go, no assembly.

// init runs after capability_amd64.go's init (files initialize in lexical
// order within a package), so activeISA is already resolved here.
func init() {
	switch activeISA {
	case AVX2, AVX512:
		dotImpl = dotUnrolled8
		squaredL2Impl = squaredL2Unrolled8
	}
}

func dotUnrolled8(a, b []float32) float32 {
	n := len(a)

	var s0, s1, s2, s3, s4, s5, s6, s7 float32

	i := 0
	for ; i <= n-8; i += 8 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
		s4 += a[i+4] * b[i+4]
		s5 += a[i+5] * b[i+5]
		s6 += a[i+6] * b[i+6]
		s7 += a[i+7] * b[i+7]
	}

	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}

	return s0 + s1 + s2 + s3 + s4 + s5 + s6 + s7
}

func squaredL2Unrolled8(a, b []float32) float32 {
	n := len(a)

	var s0, s1, s2, s3, s4, s5, s6, s7 float32

	i := 0
	for ; i <= n-8; i += 8 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		d4 := a[i+4] - b[i+4]
		d5 := a[i+5] - b[i+5]
		d6 := a[i+6] - b[i+6]
		d7 := a[i+7] - b[i+7]

		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
		s4 += d4 * d4
		s5 += d5 * d5
		s6 += d6 * d6
		s7 += d7 * d7
	}

	for ; i < n; i++ {
		d := a[i] - b[i]
		s0 += d * d
	}

	return s0 + s1 + s2 + s3 + s4 + s5 + s6 + s7
}
