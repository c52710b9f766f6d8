package engine

import "fmt"

// ErrInvalidK indicates a k outside [1, store count]. k is never clamped
// silently.
type ErrInvalidK struct {
	K     int
	Count int
}

func (e *ErrInvalidK) Error() string {
	return fmt.Sprintf("invalid k: %d (store has %d vectors)", e.K, e.Count)
}
