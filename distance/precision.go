package distance

import (
	"fmt"
	"strings"
)

// Precision selects the accumulation width of the metric kernels.
//
// PrecisionHigh is the reference behavior: products accumulate in float64,
// bounding rounding error on high-dimensional vectors. PrecisionFast trades
// that guarantee for float32 lock-step arithmetic that the platform kernels
// can accelerate. Results differ only within normal float32 rounding; which
// neighbors a search selects may differ for near-ties.
type Precision uint8

const (
	// PrecisionHigh accumulates in float64 (default).
	PrecisionHigh Precision = iota
	// PrecisionFast accumulates in float32 using the platform kernels.
	PrecisionFast
)

// String returns the canonical name of the precision mode.
func (p Precision) String() string {
	switch p {
	case PrecisionHigh:
		return "high"
	case PrecisionFast:
		return "fast"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}

// Valid reports whether p is a supported precision mode.
func (p Precision) Valid() bool {
	return p == PrecisionHigh || p == PrecisionFast
}

// ParsePrecision parses a precision mode name.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "strict", "float64":
		return PrecisionHigh, nil
	case "fast", "float32":
		return PrecisionFast, nil
	default:
		return PrecisionHigh, &ErrInvalidPrecision{Name: s}
	}
}

// ErrInvalidPrecision indicates a precision selector outside the supported set.
type ErrInvalidPrecision struct {
	// Precision is the rejected value when selection happened by enum.
	Precision Precision
	// Name is the rejected value when selection happened by string.
	Name string
}

func (e *ErrInvalidPrecision) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid precision: %q", e.Name)
	}
	return fmt.Sprintf("invalid precision: %s", e.Precision)
}
