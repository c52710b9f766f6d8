package proxi

import (
	"errors"
	"fmt"

	"github.com/BiradarSiddhant02/Proxi/distance"
	"github.com/BiradarSiddhant02/Proxi/engine"
	"github.com/BiradarSiddhant02/Proxi/vectorstore"
)

var (
	// ErrClosed is returned by operations on a closed engine.
	ErrClosed = errors.New("engine is closed")

	// ErrLoadFailed wraps the underlying shape error when LoadDatabase
	// rejects a buffer.
	ErrLoadFailed = errors.New("load failed")
)

// ErrDimensionMismatch indicates a query/database dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidDimension indicates a non-positive vector dimension.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

// ErrBufferSize indicates a flat buffer whose length does not factor into
// count x dimension.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrBufferSize struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrBufferSize) Error() string {
	return fmt.Sprintf("buffer size mismatch: expected %d floats, got %d", e.Expected, e.Actual)
}

func (e *ErrBufferSize) Unwrap() error { return e.cause }

// ErrInvalidK indicates a neighbor count outside [1, database size].
// k is never clamped silently.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidK struct {
	K     int
	Count int
	cause error
}

func (e *ErrInvalidK) Error() string {
	return fmt.Sprintf("invalid k: %d (database has %d vectors)", e.K, e.Count)
}

func (e *ErrInvalidK) Unwrap() error { return e.cause }

// ErrUnsupportedMetric indicates a metric selector outside the supported set.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrUnsupportedMetric struct {
	Metric distance.Metric
	cause  error
}

func (e *ErrUnsupportedMetric) Error() string {
	return fmt.Sprintf("unsupported metric: %s", e.Metric)
}

func (e *ErrUnsupportedMetric) Unwrap() error { return e.cause }

// ErrInvalidPrecision indicates a precision selector outside the supported
// set.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidPrecision struct {
	Precision distance.Precision
	cause     error
}

func (e *ErrInvalidPrecision) Error() string {
	return fmt.Sprintf("invalid precision: %s", e.Precision)
}

func (e *ErrInvalidPrecision) Unwrap() error { return e.cause }

// translateError normalizes package-level errors into the facade's types so
// callers only match against one vocabulary.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var id *vectorstore.ErrInvalidDimension
	if errors.As(err, &id) {
		return &ErrInvalidDimension{Dimension: id.Dimension, cause: err}
	}
	var bs *vectorstore.ErrBufferSize
	if errors.As(err, &bs) {
		return &ErrBufferSize{Expected: bs.Expected, Actual: bs.Actual, cause: err}
	}
	var ik *engine.ErrInvalidK
	if errors.As(err, &ik) {
		return &ErrInvalidK{K: ik.K, Count: ik.Count, cause: err}
	}
	var um *distance.ErrUnsupportedMetric
	if errors.As(err, &um) {
		return &ErrUnsupportedMetric{Metric: um.Metric, cause: err}
	}
	var ip *distance.ErrInvalidPrecision
	if errors.As(err, &ip) {
		return &ErrInvalidPrecision{Precision: ip.Precision, cause: err}
	}

	return err
}
