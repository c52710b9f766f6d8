package resource

import (
	"context"
	"math"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds admission limits for search traffic.
type Config struct {
	// MaxConcurrentSearches is the maximum number of in-flight searches.
	// If 0, unlimited.
	MaxConcurrentSearches int64

	// SearchesPerSecond is the maximum sustained search admission rate.
	// If 0, unlimited.
	SearchesPerSecond float64

	// Burst is the rate limiter burst size.
	// If 0, defaults to the ceiling of SearchesPerSecond (at least 1).
	Burst int
}

// Controller gates search admission.
//
// A nil *Controller is valid and admits everything, so callers configured
// without limits skip all gating.
type Controller struct {
	cfg Config

	searchSem  *semaphore.Weighted // nil if unlimited
	searchRate *rate.Limiter       // nil if unlimited
}

// NewController creates a new admission controller. A zero Config yields a
// controller that admits everything.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MaxConcurrentSearches > 0 {
		c.searchSem = semaphore.NewWeighted(cfg.MaxConcurrentSearches)
	}

	if cfg.SearchesPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = int(math.Ceil(cfg.SearchesPerSecond))
			if burst < 1 {
				burst = 1
			}
		}
		c.searchRate = rate.NewLimiter(rate.Limit(cfg.SearchesPerSecond), burst)
	}

	return c
}

// AcquireSearch blocks until a search may start or ctx is canceled.
// The rate token is taken before the concurrency slot so a throttled caller
// never sits on a slot while waiting.
func (c *Controller) AcquireSearch(ctx context.Context) error {
	if c == nil {
		return nil
	}

	if c.searchRate != nil {
		if err := c.searchRate.Wait(ctx); err != nil {
			return err
		}
	}

	if c.searchSem != nil {
		if err := c.searchSem.Acquire(ctx, 1); err != nil {
			return err
		}
	}
	return nil
}

// TryAcquireSearch attempts admission without blocking.
// Returns true if admitted, false if a limit would be exceeded.
func (c *Controller) TryAcquireSearch() bool {
	if c == nil {
		return true
	}

	if c.searchSem != nil && !c.searchSem.TryAcquire(1) {
		return false
	}

	if c.searchRate != nil && !c.searchRate.Allow() {
		if c.searchSem != nil {
			c.searchSem.Release(1)
		}
		return false
	}
	return true
}

// ReleaseSearch returns the slot taken by a successful acquire.
func (c *Controller) ReleaseSearch() {
	if c == nil {
		return
	}
	if c.searchSem != nil {
		c.searchSem.Release(1)
	}
}
