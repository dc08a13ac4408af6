package crawldex

import "context"

// PageFetcher retrieves raw HTML from URLs.
type PageFetcher interface {
	// Fetch retrieves the page at url and returns its raw HTML.
	// The context controls timeout and cancellation. Failures are
	// reported with code EUNAVAILABLE.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain request throttling for fetcher
// implementations. The traversal engine never consults it; pacing is a
// client-side concern of the fetcher collaborator.
type DomainLimiter interface {
	// Wait blocks until the limiter allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
