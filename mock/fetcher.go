package mock

import (
	"context"

	"github.com/crawldex/crawldex"
)

var _ crawldex.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of crawldex.PageFetcher.
type PageFetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *PageFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *PageFetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ crawldex.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of crawldex.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
