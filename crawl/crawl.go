// Package crawl provides the depth-first traversal engine that drives a
// crawl run: pop a URL, fetch it, extract its visible text and links,
// normalize the text into terms, merge the counts into the inverted index,
// and push the newly discovered links back onto the frontier.
package crawl

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/crawldex/crawldex"
	"github.com/crawldex/crawldex/index"
)

// Crawler drives a frontier-bounded depth-first traversal from a seed URL.
// Traversal is strictly sequential: one URL is fetched, extracted,
// normalized and indexed before the next is popped. DFS order and the
// mark-visited-at-pop invariant both depend on no two pops being in
// flight at once.
type Crawler struct {
	Fetcher    crawldex.PageFetcher
	Extractor  crawldex.TextExtractor
	Normalizer crawldex.TermNormalizer

	// Frontier overrides the built-in LIFO frontier, mainly for tests.
	// When nil, Run creates one sized to Capacity.
	Frontier crawldex.Frontier

	// Capacity caps the total number of URLs ever admitted to the
	// frontier, seed included. Defaults to DefaultCapacity.
	Capacity int

	// MaxDepth skips entries discovered more than this many hops from
	// the seed. Zero means unlimited.
	MaxDepth int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressVisited ProgressType = iota
	ProgressFailed
	ProgressDepthSkipped
	ProgressCapacityReached
	ProgressFinished
)

// ProgressEvent reports progress during a crawl run.
type ProgressEvent struct {
	Type  ProgressType
	URL   string
	Depth int
	Error error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Failure records one URL that could not be fetched or parsed. Failures
// are per-vertex: the failed URL contributes nothing to the index and its
// links are never explored, but the run continues.
type Failure struct {
	URL string
	Err error
}

// Result holds everything a finished run hands to downstream consumers:
// the run record, the visited corpus and the finalized index.
type Result struct {
	Run       *crawldex.Run
	Documents []*crawldex.Document
	Index     *index.Index
	Failures  []Failure
}

// Run crawls depth-first from seedURL until the frontier is exhausted or
// the admission cap has been reached and the remaining queue drained.
// The progress callback, if provided, receives events as the crawl
// proceeds; run.State is updated before each event fires, so callbacks
// observe the state machine's transitions.
//
// A seed that fails to fetch yields a valid run with an empty index, not
// an error. The only error returns are an invalid seed URL and context
// cancellation.
func (c *Crawler) Run(ctx context.Context, seedURL string, progress ProgressFunc) (*Result, error) {
	seed, err := crawldex.NormalizeURL(seedURL)
	if err != nil {
		return nil, err
	}

	capacity := c.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	frontier := c.Frontier
	if frontier == nil {
		frontier = NewFrontier(capacity)
	}

	run := &crawldex.Run{
		SeedURL:   seed,
		Capacity:  capacity,
		MaxDepth:  c.MaxDepth,
		State:     crawldex.StateRunning,
		StartedAt: time.Now().UTC(),
	}
	result := &Result{
		Run:   run,
		Index: index.New(),
	}

	frontier.Push(crawldex.Link{URL: seed, Depth: 0})
	visited := make(map[string]struct{})
	capped := false

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if _, done := visited[link.URL]; done {
			// The frontier already rejects duplicate admissions;
			// skipping here keeps the traversal well-defined even
			// if an entry slips through twice.
			continue
		}
		visited[link.URL] = struct{}{}

		if c.MaxDepth > 0 && link.Depth > c.MaxDepth {
			c.emit(progress, ProgressEvent{Type: ProgressDepthSkipped, URL: link.URL, Depth: link.Depth})
			continue
		}

		html, err := c.Fetcher.Fetch(ctx, link.URL)
		if err != nil {
			c.fail(result, progress, link, err)
			continue
		}

		extracted, err := c.Extractor.Extract(html, link.URL)
		if err != nil {
			c.fail(result, progress, link, err)
			continue
		}

		terms := c.Normalizer.Normalize(extracted.Text)
		result.Index.RecordDocument(link.URL, terms)
		result.Documents = append(result.Documents, &crawldex.Document{
			URL:         link.URL,
			ContentHash: computeHash(extracted.Text),
			Terms:       len(terms),
			Depth:       link.Depth,
			Position:    len(result.Documents),
			FetchedAt:   time.Now().UTC(),
		})
		c.emit(progress, ProgressEvent{Type: ProgressVisited, URL: link.URL, Depth: link.Depth})

		if capped {
			// Admission cap already hit: drain without expanding.
			continue
		}

		for _, raw := range extracted.Links {
			norm, err := crawldex.NormalizeURL(raw)
			if err != nil || !crawldex.IsCrawlable(norm) {
				continue
			}
			frontier.Push(crawldex.Link{URL: norm, Depth: link.Depth + 1})
			if frontier.AtCapacity() {
				capped = true
				run.State = crawldex.StateCapacityReached
				c.emit(progress, ProgressEvent{Type: ProgressCapacityReached, URL: link.URL})
				break
			}
		}
	}

	if capped {
		run.Outcome = crawldex.StateCapacityReached
	} else {
		run.Outcome = crawldex.StateExhausted
	}
	run.State = run.Outcome

	run.Admitted = frontier.Admitted()
	run.Documents = len(result.Documents)
	run.Failed = len(result.Failures)
	run.UniqueTerms = result.Index.TermCount()
	run.FinishedAt = time.Now().UTC()
	run.State = crawldex.StateDone
	c.emit(progress, ProgressEvent{Type: ProgressFinished})

	return result, nil
}

func (c *Crawler) fail(result *Result, progress ProgressFunc, link crawldex.Link, err error) {
	result.Failures = append(result.Failures, Failure{URL: link.URL, Err: err})
	c.emit(progress, ProgressEvent{Type: ProgressFailed, URL: link.URL, Depth: link.Depth, Error: err})
}

func (c *Crawler) emit(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

// computeHash returns the xxHash of text as a hex string.
func computeHash(text string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(text))
	return hex.EncodeToString(b[:])
}
