package proxi

import (
	"log/slog"

	"github.com/BiradarSiddhant02/Proxi/distance"
	"github.com/BiradarSiddhant02/Proxi/resource"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	numWorkers       int
	precision        distance.Precision
	resources        *resource.Config
}

// Option configures Engine constructor behavior.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := proxi.NewJSONLogger(slog.LevelInfo)
//	eng := proxi.New(proxi.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &proxi.BasicMetricsCollector{}
//	eng := proxi.New(proxi.WithMetricsCollector(metrics))
//	// ... use eng ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithNumWorkers sets the default worker count for searches.
// 0 means one worker per available CPU. Individual searches can override
// this via SearchOptions.NumWorkers.
func WithNumWorkers(n int) Option {
	return func(o *options) {
		o.numWorkers = n
	}
}

// WithPrecision sets the default kernel precision for searches.
// The default is PrecisionHigh (float64 accumulation). Individual searches
// can override this via SearchOptions.Precision.
func WithPrecision(p distance.Precision) Option {
	return func(o *options) {
		o.precision = p
	}
}

// WithResourceLimits configures search admission control (max concurrency,
// rate limiting). The zero Config means unlimited.
func WithResourceLimits(cfg resource.Config) Option {
	return func(o *options) {
		o.resources = &cfg
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		precision:        distance.PrecisionHigh,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}
