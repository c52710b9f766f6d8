package proxi

import (
	"context"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/BiradarSiddhant02/Proxi/distance"
	"github.com/BiradarSiddhant02/Proxi/engine"
)

// QueryBatch is a flat row-major buffer of query vectors. The engine borrows
// Data read-only for the duration of one Search call and never retains it.
type QueryBatch struct {
	Data      []float32
	Count     int
	Dimension int
}

// NewQueryBatch validates the batch shape up front. Search performs the same
// validation, so constructing a QueryBatch literal is equally safe.
func NewQueryBatch(data []float32, count, dim int) (QueryBatch, error) {
	if dim <= 0 {
		return QueryBatch{}, &ErrInvalidDimension{Dimension: dim}
	}
	if expected := count * dim; len(data) != expected {
		return QueryBatch{}, &ErrBufferSize{Expected: expected, Actual: len(data)}
	}
	return QueryBatch{Data: data, Count: count, Dimension: dim}, nil
}

// SearchOptions holds the per-call search knobs.
type SearchOptions struct {
	// Metric selects the scoring function. Defaults to squared L2.
	Metric distance.Metric

	// Precision selects the kernel accumulation width. Defaults to the
	// engine's configured precision.
	Precision distance.Precision

	// NumWorkers overrides the engine's worker count for this call.
	// 0 keeps the engine default.
	NumWorkers int

	// Filter, when set, must return true for a row index to be eligible.
	// It is called from multiple goroutines and must be pure.
	Filter func(index uint32) bool

	// AllowList, when set, restricts results to row indexes present in the
	// bitmap. The caller must not mutate it while the search runs.
	AllowList *roaring.Bitmap
}

// Neighbor is one search hit: a database row index and its score under the
// requested metric (distance for the L2 family, similarity for dot and
// cosine).
type Neighbor struct {
	Index uint32
	Score float32
}

// SearchResult holds the neighbors for one batch, indexed by query position.
type SearchResult struct {
	Neighbors [][]Neighbor
}

// Search finds the k best database rows for every query in the batch.
//
// Validation is eager and total: the call either fails before any scan work
// starts or returns results for the whole batch. Neighbors per query are
// ordered best to worst (ascending distance or descending similarity), ties
// broken by ascending row index; query order follows batch order. Repeating
// a call with identical inputs returns identical results regardless of
// worker count.
//
// ctx is consulted before partitions start, never inside them: a search
// either fails outright or runs to completion, and cancellation mid-call
// cannot yield partial results.
func (e *Engine) Search(ctx context.Context, batch QueryBatch, k int, optFns ...func(o *SearchOptions)) (*SearchResult, error) {
	start := time.Now()

	opts := SearchOptions{
		Metric:     distance.MetricSquaredL2,
		Precision:  e.opts.precision,
		NumWorkers: e.opts.numWorkers,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	result, err := e.search(ctx, batch, k, opts)
	duration := time.Since(start)
	if err != nil {
		e.metrics.RecordSearch(batch.Count, k, duration, err)
		e.logger.LogSearch(ctx, batch.Count, k, err)
		return nil, err
	}

	e.metrics.RecordSearch(batch.Count, k, duration, nil)
	e.logger.LogSearch(ctx, batch.Count, k, nil)
	return result, nil
}

func (e *Engine) search(ctx context.Context, batch QueryBatch, k int, opts SearchOptions) (*SearchResult, error) {
	if e.closed.Load() {
		return nil, ErrClosed
	}

	// Admission comes before validation so configured limits govern all
	// traffic, malformed requests included.
	if err := e.res.AcquireSearch(ctx); err != nil {
		return nil, err
	}
	defer e.res.ReleaseSearch()

	if batch.Dimension <= 0 {
		return nil, &ErrInvalidDimension{Dimension: batch.Dimension}
	}
	if expected := batch.Count * batch.Dimension; len(batch.Data) != expected {
		return nil, &ErrBufferSize{Expected: expected, Actual: len(batch.Data)}
	}

	store := e.store.Load()
	if store == nil {
		// No database behaves like an empty one: k >= 1 can never hold.
		return nil, &ErrInvalidK{K: k, Count: 0}
	}
	if batch.Dimension != store.Dimension() {
		return nil, &ErrDimensionMismatch{Expected: store.Dimension(), Actual: batch.Dimension}
	}
	if k < 1 || k > store.Count() {
		return nil, &ErrInvalidK{K: k, Count: store.Count()}
	}
	if !opts.Metric.Valid() {
		return nil, &ErrUnsupportedMetric{Metric: opts.Metric}
	}
	if !opts.Precision.Valid() {
		return nil, &ErrInvalidPrecision{Precision: opts.Precision}
	}

	entries, err := engine.NewCoordinator(store).Search(ctx, batch.Data, batch.Count, k, engine.Options{
		Metric:    opts.Metric,
		Precision: opts.Precision,
		Workers:   opts.NumWorkers,
		Filter:    opts.Filter,
		Allow:     opts.AllowList,
	})
	if err != nil {
		return nil, translateError(err)
	}

	neighbors := make([][]Neighbor, len(entries))
	for qi, list := range entries {
		ns := make([]Neighbor, len(list))
		for i, ent := range list {
			ns[i] = Neighbor{Index: ent.Index, Score: ent.Score}
		}
		neighbors[qi] = ns
	}
	return &SearchResult{Neighbors: neighbors}, nil
}

// SearchVector is a single-query convenience wrapper around Search.
func (e *Engine) SearchVector(ctx context.Context, query []float32, k int, optFns ...func(o *SearchOptions)) ([]Neighbor, error) {
	batch := QueryBatch{Data: query, Count: 1, Dimension: len(query)}

	result, err := e.Search(ctx, batch, k, optFns...)
	if err != nil {
		return nil, err
	}
	return result.Neighbors[0], nil
}
