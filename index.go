package crawldex

// IndexReader is the read-only view of a finished inverted index, handed
// to downstream consumers (stores, exporters) once a crawl reaches Done.
type IndexReader interface {
	// TermFrequency returns how many times term occurs in the document,
	// or 0 if the pair is absent.
	TermFrequency(term, docID string) int

	// DocumentsContaining returns the IDs of all documents containing
	// term. The result is empty for an unseen term.
	DocumentsContaining(term string) []string

	// Documents returns the IDs of all indexed documents.
	Documents() []string

	// Terms returns every term in the index.
	Terms() []string

	// Walk calls fn for every (term, document, count) triple. Iteration
	// order is unspecified. Walk stops and returns the first error
	// returned by fn.
	Walk(fn func(term, docID string, count int) error) error
}
