package crawl

import (
	"sync"

	"github.com/crawldex/crawldex"
	"github.com/crawldex/crawldex/bloom"
)

// Compile-time interface verification.
var _ crawldex.Frontier = (*Frontier)(nil)

// DefaultCapacity bounds how many URLs a crawl may ever admit when no
// explicit capacity is configured.
const DefaultCapacity = 500

// frontierFalsePositiveRate sizes the Bloom filter backing the fast-path
// duplicate check.
const frontierFalsePositiveRate = 0.01

// Frontier is an in-memory LIFO frontier with a hard admission cap.
// Admission counts every link ever pushed, not the current stack depth:
// once the cap is reached nothing further is admitted. A Bloom filter
// screens duplicates cheaply; an exact set backs it, because the
// admission count and the no-revisit guarantee both require that a false
// positive never drops a new URL.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu       sync.Mutex
	capacity int
	admitted int
	maybe    *bloom.Filter
	seen     map[string]struct{}
	stack    []crawldex.Link
}

// NewFrontier creates a Frontier admitting at most capacity links.
// A non-positive capacity falls back to DefaultCapacity.
func NewFrontier(capacity int) *Frontier {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Frontier{
		capacity: capacity,
		maybe:    bloom.NewFilter(uint(capacity), frontierFalsePositiveRate),
		seen:     make(map[string]struct{}),
	}
}

// Push admits link unless the admission cap has been reached or the URL
// has already been admitted. Returns false when the link is dropped.
func (f *Frontier) Push(link crawldex.Link) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.admitted >= f.capacity {
		return false
	}
	if f.maybe.Test(link.URL) {
		// The filter can yield false positives; the exact set decides.
		if _, dup := f.seen[link.URL]; dup {
			return false
		}
	}

	f.maybe.Add(link.URL)
	f.seen[link.URL] = struct{}{}
	f.admitted++
	f.stack = append(f.stack, link)
	return true
}

// Pop removes and returns the most recently pushed link.
// The bool result is false when the frontier is empty.
func (f *Frontier) Pop() (crawldex.Link, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.stack) == 0 {
		return crawldex.Link{}, false
	}
	link := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return link, true
}

// Len returns the number of links currently queued.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.stack)
}

// Seen reports whether the URL has ever been admitted.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.seen[url]
	return ok
}

// AtCapacity reports whether the admission cap has been reached.
func (f *Frontier) AtCapacity() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.admitted >= f.capacity
}

// Admitted returns the total number of links ever admitted, including
// ones already popped.
func (f *Frontier) Admitted() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.admitted
}
