// Package index provides the in-memory inverted index built incrementally
// as a crawl visits documents, plus the TF-IDF weighting derived from it
// once the crawl is finished.
package index

import (
	"sort"
	"sync"

	"github.com/crawldex/crawldex"
)

// Compile-time interface verification.
var _ crawldex.IndexReader = (*Index)(nil)

// Index maps each term to the documents containing it and the number of
// occurrences within each. Construction is additive: counts are only ever
// merged in, never decremented or removed, so recording the same document
// twice adds to its existing counts rather than replacing them.
// It is safe for concurrent use by multiple goroutines.
type Index struct {
	mu       sync.RWMutex
	postings map[string]map[string]int // term -> docID -> count
	docs     map[string]int            // docID -> terms recorded
}

// New creates an empty Index.
func New() *Index {
	return &Index{
		postings: make(map[string]map[string]int),
		docs:     make(map[string]int),
	}
}

// RecordDocument merges the occurrence counts of one document's term
// sequence into the index. A document with no terms is still registered
// as part of the corpus.
func (x *Index) RecordDocument(docID string, terms []string) {
	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term]++
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	x.docs[docID] += len(terms)
	for term, n := range counts {
		m, ok := x.postings[term]
		if !ok {
			m = make(map[string]int)
			x.postings[term] = m
		}
		m[docID] += n
	}
}

// TermFrequency returns how many times term occurs in the document, or 0
// if the pair is absent.
func (x *Index) TermFrequency(term, docID string) int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.postings[term][docID]
}

// DocumentsContaining returns the IDs of all documents containing term,
// sorted for deterministic output. The result is empty for an unseen term.
func (x *Index) DocumentsContaining(term string) []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	ids := make([]string, 0, len(x.postings[term]))
	for docID := range x.postings[term] {
		ids = append(ids, docID)
	}
	sort.Strings(ids)
	return ids
}

// Documents returns the IDs of all indexed documents, sorted.
func (x *Index) Documents() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	ids := make([]string, 0, len(x.docs))
	for docID := range x.docs {
		ids = append(ids, docID)
	}
	sort.Strings(ids)
	return ids
}

// Terms returns every term in the index, sorted.
func (x *Index) Terms() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	terms := make([]string, 0, len(x.postings))
	for term := range x.postings {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// DocumentCount returns the number of indexed documents.
func (x *Index) DocumentCount() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.docs)
}

// TermCount returns the number of distinct terms in the index.
func (x *Index) TermCount() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.postings)
}

// Walk calls fn for every (term, document, count) triple. Iteration order
// is unspecified. Walk stops and returns the first error returned by fn.
func (x *Index) Walk(fn func(term, docID string, count int) error) error {
	x.mu.RLock()
	defer x.mu.RUnlock()

	for term, docCounts := range x.postings {
		for docID, count := range docCounts {
			if err := fn(term, docID, count); err != nil {
				return err
			}
		}
	}
	return nil
}
