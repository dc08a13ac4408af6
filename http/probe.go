package http

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// DefaultProbeConcurrency bounds how many probe requests run at once.
const DefaultProbeConcurrency = 8

// ProbeResult reports the reachability of one URL.
type ProbeResult struct {
	URL    string
	Status int
	Err    error
}

// ProbeLinks issues HEAD requests against urls concurrently and reports
// each URL's status. Results are returned in input order regardless of
// completion order. A non-positive concurrency falls back to
// DefaultProbeConcurrency.
func ProbeLinks(ctx context.Context, client *http.Client, urls []string, concurrency int) []ProbeResult {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	if concurrency <= 0 {
		concurrency = DefaultProbeConcurrency
	}

	results := make([]ProbeResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			results[i] = probeOne(gctx, client, u)
			return nil
		})
	}

	// Workers never return errors; Wait is for completion only.
	_ = g.Wait()

	return results
}

func probeOne(ctx context.Context, client *http.Client, url string) ProbeResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return ProbeResult{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return ProbeResult{URL: url, Err: err}
	}
	resp.Body.Close()

	return ProbeResult{URL: url, Status: resp.StatusCode}
}
