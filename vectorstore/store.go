package vectorstore

import (
	"github.com/BiradarSiddhant02/Proxi/distance"
)

// Store is an immutable row-major vector database.
//
// Vectors are stored contiguously in a single []float32 slice:
// row i occupies data[i*dim : (i+1)*dim]. The buffer is private to the
// store; accessors return read-only views into it.
//
// Thread safety: a Store never mutates after New returns, so any number of
// goroutines may read it concurrently without locking.
type Store struct {
	data  []float32
	norms []float32
	count int
	dim   int
}

// New builds a Store from a row-major buffer of count vectors of dim
// elements each.
//
// The buffer is copied; the caller keeps ownership of data and may reuse it
// immediately. The L2 norm of every row is computed once here (accumulating
// in float64) and cached for the cosine search path.
//
// A count of zero is a valid, empty store.
func New(data []float32, count, dim int) (*Store, error) {
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	// A negative count always fails here too: expected goes negative and can
	// never equal a real buffer length.
	if expected := count * dim; len(data) != expected {
		return nil, &ErrBufferSize{Expected: expected, Actual: len(data)}
	}

	buf := make([]float32, len(data))
	copy(buf, data)

	norms := make([]float32, count)
	for i := 0; i < count; i++ {
		norms[i] = distance.Norm(buf[i*dim : (i+1)*dim])
	}

	return &Store{
		data:  buf,
		norms: norms,
		count: count,
		dim:   dim,
	}, nil
}

// Count returns the number of vectors in the store.
func (s *Store) Count() int {
	return s.count
}

// Dimension returns the vector dimensionality.
func (s *Store) Dimension() int {
	return s.dim
}

// SizeBytes returns the memory held by the vector buffer and norm cache.
func (s *Store) SizeBytes() int {
	return (len(s.data) + len(s.norms)) * 4
}

// Row returns a read-only view of row i.
//
// The slice aliases the store's buffer; callers MUST NOT mutate it. The
// capacity is capped so appends cannot clobber neighboring rows.
func (s *Store) Row(i int) ([]float32, error) {
	if i < 0 || i >= s.count {
		return nil, &ErrIndexOutOfRange{Index: i, Count: s.count}
	}
	start := i * s.dim
	end := start + s.dim
	return s.data[start:end:end], nil
}

// Rows returns the contiguous block of rows [lo, hi) as one flat view,
// suitable for handing to a batch kernel.
//
// The caller must ensure 0 <= lo <= hi <= Count(). The slice aliases the
// store's buffer; callers MUST NOT mutate it.
func (s *Store) Rows(lo, hi int) []float32 {
	start := lo * s.dim
	end := hi * s.dim
	return s.data[start:end:end]
}

// Norms returns the cached L2 norms of rows [lo, hi), aligned with Rows.
//
// The caller must ensure 0 <= lo <= hi <= Count(). The slice aliases the
// store's cache; callers MUST NOT mutate it.
func (s *Store) Norms(lo, hi int) []float32 {
	return s.norms[lo:hi:hi]
}
