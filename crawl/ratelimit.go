package crawl

import (
	"context"
	"sync"

	"github.com/crawldex/crawldex"
	"golang.org/x/time/rate"
)

// Compile-time interface verification.
var _ crawldex.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces outbound requests per domain using token buckets,
// one limiter per domain with a burst of 1. The traversal engine never
// sees it; the HTTP fetcher consults it before each request.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per
// second to each domain.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the limiter allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
