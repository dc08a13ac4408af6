package index_test

import (
	"math"
	"testing"

	"github.com/crawldex/crawldex/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWeights(t *testing.T) {
	t.Parallel()

	x := index.New()
	x.RecordDocument("doc1", []string{"cat", "cat", "dog"})
	x.RecordDocument("doc2", []string{"dog"})

	w, err := index.ComputeWeights(x)
	require.NoError(t, err)

	// "dog" occurs in both documents of a 2-document corpus, so its
	// idf is ln(2/2) = 0; "cat" occurs in one, so idf = ln(2).
	byKey := make(map[string]index.Posting)
	for _, p := range w.Postings {
		byKey[p.Term+"|"+p.DocID] = p
	}

	cat := byKey["cat|doc1"]
	assert.Equal(t, 2, cat.TF)
	assert.Equal(t, 1, cat.DF)
	assert.InDelta(t, math.Log(2), cat.IDF, 1e-9)
	assert.InDelta(t, 2*math.Log(2), cat.TFIDF, 1e-9)

	dog := byKey["dog|doc1"]
	assert.Equal(t, 1, dog.TF)
	assert.Equal(t, 2, dog.DF)
	assert.InDelta(t, 0, dog.IDF, 1e-9)
	assert.InDelta(t, 0, dog.TFIDF, 1e-9)
}

func TestComputeWeights_PostingsSortedByTermThenDoc(t *testing.T) {
	t.Parallel()

	x := index.New()
	x.RecordDocument("b", []string{"zebra", "ant"})
	x.RecordDocument("a", []string{"ant"})

	w, err := index.ComputeWeights(x)
	require.NoError(t, err)

	require.Len(t, w.Postings, 3)
	assert.Equal(t, "ant", w.Postings[0].Term)
	assert.Equal(t, "a", w.Postings[0].DocID)
	assert.Equal(t, "ant", w.Postings[1].Term)
	assert.Equal(t, "b", w.Postings[1].DocID)
	assert.Equal(t, "zebra", w.Postings[2].Term)
}

func TestComputeWeights_DocLengths(t *testing.T) {
	t.Parallel()

	x := index.New()
	x.RecordDocument("doc1", []string{"cat", "cat", "dog"})
	x.RecordDocument("doc2", []string{"dog"})

	w, err := index.ComputeWeights(x)
	require.NoError(t, err)

	// doc1's vector is [cat: 2*ln2, dog: 0], so its length is 2*ln2.
	assert.InDelta(t, 2*math.Log(2), w.DocLengths["doc1"], 1e-9)

	// doc2's only weight is zero; length falls back to 1.
	assert.InDelta(t, 1.0, w.DocLengths["doc2"], 1e-9)
}

func TestComputeWeights_EmptyIndex(t *testing.T) {
	t.Parallel()

	w, err := index.ComputeWeights(index.New())
	require.NoError(t, err)
	assert.Empty(t, w.Postings)
	assert.Empty(t, w.DocLengths)
}
