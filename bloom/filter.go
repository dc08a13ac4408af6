// Package bloom provides a probabilistic membership filter used by the
// crawl frontier as a cheap first-pass duplicate check.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed on normalized URLs.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL in the filter.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might have been added. False positives
// are possible; false negatives are not, so a false result is a reliable
// "never seen".
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}
