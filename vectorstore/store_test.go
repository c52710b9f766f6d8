package vectorstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := New([]float32{0, 0, 3, 4, 1, 1}, 3, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, s.Count())
		assert.Equal(t, 2, s.Dimension())
		assert.Equal(t, (6+3)*4, s.SizeBytes())
	})

	t.Run("empty store is valid", func(t *testing.T) {
		s, err := New(nil, 0, 4)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Count())
		assert.Equal(t, 4, s.Dimension())
	})

	t.Run("non-positive dimension", func(t *testing.T) {
		for _, dim := range []int{0, -3} {
			_, err := New([]float32{1}, 1, dim)
			var target *ErrInvalidDimension
			require.ErrorAs(t, err, &target)
			assert.Equal(t, dim, target.Dimension)
		}
	})

	t.Run("buffer size mismatch", func(t *testing.T) {
		_, err := New([]float32{1, 2, 3}, 2, 2)
		var target *ErrBufferSize
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 4, target.Expected)
		assert.Equal(t, 3, target.Actual)
	})

	t.Run("negative count", func(t *testing.T) {
		_, err := New([]float32{1, 2}, -1, 2)
		var target *ErrBufferSize
		require.ErrorAs(t, err, &target)
	})

	t.Run("copies the caller buffer", func(t *testing.T) {
		src := []float32{1, 2, 3, 4}
		s, err := New(src, 2, 2)
		require.NoError(t, err)

		src[0] = 99

		row, err := s.Row(0)
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 2}, row)
	})
}

func TestRowAccess(t *testing.T) {
	s, err := New([]float32{0, 0, 3, 4, 1, 1, 6, 8}, 4, 2)
	require.NoError(t, err)

	t.Run("row views", func(t *testing.T) {
		row, err := s.Row(1)
		require.NoError(t, err)
		assert.Equal(t, []float32{3, 4}, row)

		row, err = s.Row(3)
		require.NoError(t, err)
		assert.Equal(t, []float32{6, 8}, row)
	})

	t.Run("out of range", func(t *testing.T) {
		for _, i := range []int{-1, 4, 100} {
			_, err := s.Row(i)
			var target *ErrIndexOutOfRange
			require.ErrorAs(t, err, &target)
			assert.Equal(t, i, target.Index)
			assert.Equal(t, 4, target.Count)
		}
	})

	t.Run("contiguous block", func(t *testing.T) {
		assert.Equal(t, []float32{3, 4, 1, 1}, s.Rows(1, 3))
		assert.Empty(t, s.Rows(2, 2))
		assert.Len(t, s.Rows(0, 4), 8)
	})

	t.Run("cached norms", func(t *testing.T) {
		norms := s.Norms(0, 4)
		require.Len(t, norms, 4)
		assert.InDelta(t, 0, norms[0], 1e-6)
		assert.InDelta(t, 5, norms[1], 1e-6)
		assert.InDelta(t, 10, norms[3], 1e-6)

		assert.Equal(t, []float32{norms[1], norms[2]}, s.Norms(1, 3))
	})
}
