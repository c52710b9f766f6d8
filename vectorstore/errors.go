package vectorstore

import "fmt"

// ErrInvalidDimension indicates a non-positive dimension at load time.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrBufferSize indicates a buffer whose element count does not match the
// declared count × dimension shape.
type ErrBufferSize struct {
	Expected int
	Actual   int
}

func (e *ErrBufferSize) Error() string {
	return fmt.Sprintf("buffer size mismatch: expected %d elements, got %d", e.Expected, e.Actual)
}

// ErrIndexOutOfRange indicates a row access beyond the store bounds.
//
// Searches never produce this for valid inputs; seeing it surface from the
// engine indicates a bug, not a caller error.
type ErrIndexOutOfRange struct {
	Index int
	Count int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d (store has %d vectors)", e.Index, e.Count)
}
