package proxi

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/BiradarSiddhant02/Proxi/distance"
	"github.com/BiradarSiddhant02/Proxi/resource"
	"github.com/BiradarSiddhant02/Proxi/vectorstore"
)

// Engine is an exact nearest-neighbor search engine over a dense float32
// vector database.
//
// The lifecycle is construct, load, search, close. LoadDatabase replaces the
// database wholesale; there is no partial mutation. All methods are safe for
// concurrent use: searches run against the snapshot loaded when they start,
// and a concurrent load never affects them.
type Engine struct {
	opts    options
	logger  *Logger
	metrics MetricsCollector
	res     *resource.Controller

	store  atomic.Pointer[vectorstore.Store]
	closed atomic.Bool
}

// New creates an Engine with no database loaded.
func New(optFns ...Option) *Engine {
	opts := applyOptions(optFns)

	e := &Engine{
		opts:    opts,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
	if opts.resources != nil {
		e.res = resource.NewController(*opts.resources)
	}
	return e
}

// LoadDatabase copies vectors into engine-owned memory and makes them the
// active database, replacing any previous one atomically. vectors is a
// row-major buffer of count vectors of the given dimension; the engine never
// retains the caller's slice.
//
// In-flight searches keep the database they started with. Errors wrap
// ErrLoadFailed around the underlying shape error.
func (e *Engine) LoadDatabase(ctx context.Context, vectors []float32, count, dim int) error {
	start := time.Now()

	if e.closed.Load() {
		err := ErrClosed
		e.metrics.RecordLoad(count, dim, time.Since(start), err)
		e.logger.LogLoad(ctx, count, dim, err)
		return err
	}
	if err := ctx.Err(); err != nil {
		e.metrics.RecordLoad(count, dim, time.Since(start), err)
		e.logger.LogLoad(ctx, count, dim, err)
		return err
	}

	store, err := vectorstore.New(vectors, count, dim)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrLoadFailed, translateError(err))
		e.metrics.RecordLoad(count, dim, time.Since(start), err)
		e.logger.LogLoad(ctx, count, dim, err)
		return err
	}

	e.store.Store(store)

	e.metrics.RecordLoad(count, dim, time.Since(start), nil)
	e.logger.LogLoad(ctx, count, dim, nil)
	return nil
}

// Stats describes the engine's current database and kernel runtime.
type Stats struct {
	// VectorCount is the number of vectors in the active database.
	VectorCount int
	// Dimension is the database dimensionality, 0 when nothing is loaded.
	Dimension int
	// SizeBytes is the engine-owned memory held by the active database.
	SizeBytes int
	// Kernel reports which platform kernel PrecisionFast dispatches to.
	Kernel distance.KernelInfo
}

// Stats returns a snapshot of the engine state.
func (e *Engine) Stats() Stats {
	s := Stats{Kernel: distance.ActiveKernel()}
	if store := e.store.Load(); store != nil {
		s.VectorCount = store.Count()
		s.Dimension = store.Dimension()
		s.SizeBytes = store.SizeBytes()
	}
	return s
}
