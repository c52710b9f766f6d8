package engine

import (
	"context"
	"math"
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/BiradarSiddhant02/Proxi/distance"
	"github.com/BiradarSiddhant02/Proxi/topk"
	"github.com/BiradarSiddhant02/Proxi/vectorstore"
)

// Options carries the per-search knobs the coordinator honors.
type Options struct {
	// Metric selects the scoring function. Zero value is squared L2.
	Metric distance.Metric

	// Precision selects the kernel accumulation width. Zero value is
	// float64 accumulation.
	Precision distance.Precision

	// Workers pins the fan-out width. Zero or negative means one worker per
	// available CPU (runtime.GOMAXPROCS).
	Workers int

	// Filter, when set, must return true for a row index to be eligible.
	// It is called from multiple goroutines and must be pure.
	Filter func(index uint32) bool

	// Allow, when set, restricts results to row indexes present in the
	// bitmap. The caller must not mutate it while the search runs.
	Allow *roaring.Bitmap
}

// Coordinator partitions search work over one store snapshot.
//
// It never mutates the store; any number of coordinators may share one.
type Coordinator struct {
	store *vectorstore.Store
}

// NewCoordinator creates a coordinator bound to store.
func NewCoordinator(store *vectorstore.Store) *Coordinator {
	return &Coordinator{store: store}
}

// Search scans the store for the k best rows per query.
//
// queries is a row-major buffer of queryCount vectors whose dimension must
// equal the store's. The result holds one entry list per query, in batch
// order, each ordered best to worst with ties broken by ascending row index.
// Scores are metric-natural: distances for the L2 family, similarities for
// dot and cosine.
//
// The search is all-or-nothing: on error no partial results are returned.
// ctx is only observed between partitions; a running partition always scans
// to completion.
func (c *Coordinator) Search(ctx context.Context, queries []float32, queryCount, k int, opts Options) ([][]topk.Entry, error) {
	count := c.store.Count()
	dim := c.store.Dimension()

	if k < 1 || k > count {
		return nil, &ErrInvalidK{K: k, Count: count}
	}
	if _, err := distance.Provider(opts.Metric, opts.Precision); err != nil {
		return nil, err
	}
	if expected := queryCount * dim; len(queries) != expected {
		return nil, &vectorstore.ErrBufferSize{Expected: expected, Actual: len(queries)}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([][]topk.Entry, queryCount)
	if queryCount == 0 {
		return results, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	kern := newKernel(opts)

	var err error
	if queryCount >= workers {
		err = c.searchByQueries(ctx, queries, queryCount, k, workers, kern, results)
	} else {
		err = c.searchByRows(ctx, queries, queryCount, k, workers, kern, results)
	}
	if err != nil {
		return nil, err
	}

	c.finalizeScores(opts.Metric, results)
	return results, nil
}

// searchByQueries assigns each worker a contiguous range of queries; every
// worker scans the full store for each query it owns.
func (c *Coordinator) searchByQueries(ctx context.Context, queries []float32, queryCount, k, workers int, kern kernel, results [][]topk.Entry) error {
	count := c.store.Count()
	dim := c.store.Dimension()

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for part := 0; part < workers; part++ {
		lo := part * queryCount / workers
		hi := (part + 1) * queryCount / workers
		if lo == hi {
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			sc := acquireScratch()
			defer releaseScratch(sc)

			sel := topk.NewSelector(k)
			for qi := lo; qi < hi; qi++ {
				query := queries[qi*dim : (qi+1)*dim]
				c.scanRows(query, 0, count, sel, sc, kern)
				results[qi] = sel.Drain()
			}
			return nil
		})
	}

	return g.Wait()
}

// searchByRows splits the store's row range into contiguous chunks per
// query. Each task drains a private selector; the sorted partials are merged
// per query once every task has joined.
func (c *Coordinator) searchByRows(ctx context.Context, queries []float32, queryCount, k, workers int, kern kernel, results [][]topk.Entry) error {
	count := c.store.Count()
	dim := c.store.Dimension()

	// Depends only on (queryCount, workers, count), never on scheduling.
	splits := workers / queryCount
	if splits < 1 {
		splits = 1
	}
	if maxSplits := (count + blockRows - 1) / blockRows; splits > maxSplits {
		splits = maxSplits
	}

	partials := make([][]topk.Entry, queryCount*splits)

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for qi := 0; qi < queryCount; qi++ {
		query := queries[qi*dim : (qi+1)*dim]

		for si := 0; si < splits; si++ {
			lo := si * count / splits
			hi := (si + 1) * count / splits
			if lo == hi {
				continue
			}
			slot := qi*splits + si

			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				sc := acquireScratch()
				defer releaseScratch(sc)

				sel := topk.NewSelector(k)
				c.scanRows(query, lo, hi, sel, sc, kern)
				partials[slot] = sel.Drain()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for qi := 0; qi < queryCount; qi++ {
		results[qi] = topk.MergeEntryLists(k, partials[qi*splits:(qi+1)*splits]...)
	}
	return nil
}

// scanRows scores rows [lo, hi) against query and offers them to sel, one
// block at a time through the batch kernel.
func (c *Coordinator) scanRows(query []float32, lo, hi int, sel *topk.Selector, sc *scratch, kern kernel) {
	dim := c.store.Dimension()

	var queryNorm float32
	if kern.metric == distance.MetricCosine {
		queryNorm = distance.Norm(query)
	}

	for blockLo := lo; blockLo < hi; blockLo += blockRows {
		blockHi := min(blockLo+blockRows, hi)
		n := blockHi - blockLo

		rows := c.store.Rows(blockLo, blockHi)
		scores := sc.scores[:n]
		kern.batch(query, rows, dim, scores)

		// Map similarities into the internal ascending order. The L2 family
		// is already ascending; MetricL2's square root is deferred to
		// finalizeScores since it does not change selection.
		switch kern.metric {
		case distance.MetricDot:
			for j := 0; j < n; j++ {
				scores[j] = -scores[j]
			}
		case distance.MetricCosine:
			rowNorms := c.store.Norms(blockLo, blockHi)
			for j := 0; j < n; j++ {
				scores[j] = -distance.CosineFromDot(scores[j], queryNorm, rowNorms[j])
			}
		}

		if kern.filter == nil && kern.allow == nil {
			for j := 0; j < n; j++ {
				sel.Offer(uint32(blockLo+j), scores[j])
			}
			continue
		}

		for j := 0; j < n; j++ {
			index := uint32(blockLo + j)
			if kern.allow != nil && !kern.allow.Contains(index) {
				continue
			}
			if kern.filter != nil && !kern.filter(index) {
				continue
			}
			sel.Offer(index, scores[j])
		}
	}
}

// finalizeScores converts internal scores to metric-natural values.
func (c *Coordinator) finalizeScores(m distance.Metric, results [][]topk.Entry) {
	switch m {
	case distance.MetricL2:
		for _, list := range results {
			for i := range list {
				list[i].Score = float32(math.Sqrt(float64(list[i].Score)))
			}
		}
	case distance.MetricDot, distance.MetricCosine:
		for _, list := range results {
			for i := range list {
				list[i].Score = -list[i].Score
			}
		}
	}
}

// kernel bundles the per-search scan state shared by all partitions.
type kernel struct {
	metric distance.Metric
	batch  distance.BatchFunc
	filter func(index uint32) bool
	allow  *roaring.Bitmap
}

func newKernel(opts Options) kernel {
	k := kernel{
		metric: opts.Metric,
		filter: opts.Filter,
		allow:  opts.Allow,
	}

	// Dot and cosine share the dot kernel; cosine divides by the cached
	// norms afterwards. The L2 family shares the squared kernel.
	switch opts.Metric {
	case distance.MetricDot, distance.MetricCosine:
		k.batch = distance.BatchDot(opts.Precision)
	default:
		k.batch = distance.BatchSquaredL2(opts.Precision)
	}
	return k
}
