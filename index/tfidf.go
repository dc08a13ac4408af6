package index

import (
	"math"
	"sort"

	"github.com/crawldex/crawldex"
)

// Posting carries the weighted statistics of one (term, document) pair.
type Posting struct {
	Term  string
	DocID string
	TF    int
	DF    int
	IDF   float64
	TFIDF float64
}

// Weights is the TF-IDF view of a finished index, consumed by stores and
// exporters. Postings are ordered by term, then document ID.
type Weights struct {
	Postings []Posting

	// DocLengths maps each document to the Euclidean norm of its
	// tf-idf vector, for cosine scoring downstream. A document whose
	// every term has zero weight gets length 1 so that downstream
	// division is always defined.
	DocLengths map[string]float64
}

// ComputeWeights derives TF-IDF weights and document vector lengths from
// a finished index: idf = ln(N/df) and tf-idf = tf * idf, with N the
// corpus size and df the number of documents containing the term.
func ComputeWeights(idx crawldex.IndexReader) (*Weights, error) {
	n := len(idx.Documents())

	// First pass: document frequency per term.
	df := make(map[string]int)
	if err := idx.Walk(func(term, _ string, _ int) error {
		df[term]++
		return nil
	}); err != nil {
		return nil, err
	}

	w := &Weights{DocLengths: make(map[string]float64, n)}
	lengthSquared := make(map[string]float64, n)

	if err := idx.Walk(func(term, docID string, count int) error {
		var idf float64
		if df[term] > 0 && n > 0 {
			idf = math.Log(float64(n) / float64(df[term]))
		}
		tfidf := float64(count) * idf
		w.Postings = append(w.Postings, Posting{
			Term:  term,
			DocID: docID,
			TF:    count,
			DF:    df[term],
			IDF:   idf,
			TFIDF: tfidf,
		})
		lengthSquared[docID] += tfidf * tfidf
		return nil
	}); err != nil {
		return nil, err
	}

	sort.Slice(w.Postings, func(i, j int) bool {
		if w.Postings[i].Term != w.Postings[j].Term {
			return w.Postings[i].Term < w.Postings[j].Term
		}
		return w.Postings[i].DocID < w.Postings[j].DocID
	})

	for _, docID := range idx.Documents() {
		length := math.Sqrt(lengthSquared[docID])
		if length == 0 {
			length = 1.0
		}
		w.DocLengths[docID] = length
	}

	return w, nil
}
