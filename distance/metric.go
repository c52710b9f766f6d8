package distance

import (
	"fmt"
	"strings"
)

// Metric selects the scoring function applied to a (query, row) pair.
type Metric uint8

const (
	// MetricSquaredL2 is the squared Euclidean distance (default).
	MetricSquaredL2 Metric = iota
	// MetricL2 is the Euclidean distance.
	MetricL2
	// MetricDot is the inner product.
	MetricDot
	// MetricCosine is the cosine similarity.
	MetricCosine
)

// String returns the canonical name of the metric.
func (m Metric) String() string {
	switch m {
	case MetricSquaredL2:
		return "squared_l2"
	case MetricL2:
		return "l2"
	case MetricDot:
		return "dot"
	case MetricCosine:
		return "cosine"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(m))
	}
}

// Valid reports whether m is one of the supported metrics.
func (m Metric) Valid() bool {
	switch m {
	case MetricSquaredL2, MetricL2, MetricDot, MetricCosine:
		return true
	default:
		return false
	}
}

// Similarity reports whether larger scores are better under m.
// Distance metrics (squared L2, L2) rank ascending instead.
func (m Metric) Similarity() bool {
	return m == MetricDot || m == MetricCosine
}

// ParseMetric parses a metric name. Common aliases are accepted.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "squared_l2", "squared-l2", "squared_euclidean", "squared-euclidean", "l2sq":
		return MetricSquaredL2, nil
	case "l2", "euclidean":
		return MetricL2, nil
	case "dot", "inner_product", "inner-product", "ip":
		return MetricDot, nil
	case "cosine", "cos":
		return MetricCosine, nil
	default:
		return MetricSquaredL2, &ErrUnsupportedMetric{Name: s}
	}
}

// ErrUnsupportedMetric indicates a metric selector outside the supported set.
type ErrUnsupportedMetric struct {
	// Metric is the rejected value when selection happened by enum.
	Metric Metric
	// Name is the rejected value when selection happened by string.
	Name string
}

func (e *ErrUnsupportedMetric) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unsupported metric: %q", e.Name)
	}
	return fmt.Sprintf("unsupported metric: %s", e.Metric)
}
