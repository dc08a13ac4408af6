package snowball_test

import (
	"testing"

	"github.com/crawldex/crawldex/snowball"
	"github.com/stretchr/testify/assert"
)

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	n := snowball.New()

	t.Run("StemsTokens", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"run", "quick", "databas"}, n.Normalize("running quickly databases"))
	})

	t.Run("PreservesOrderAndMultiplicity", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"appl", "appl", "banana"}, n.Normalize("apple apple banana"))
	})

	t.Run("DropsStopWords", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"crawler", "frontier"}, n.Normalize("the crawler and the frontier"))
	})

	t.Run("DropsShortTokens", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"graph"}, n.Normalize("go is a graph"))
	})

	t.Run("DropsNumbers", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"error", "respons"}, n.Normalize("404 error 3.14 response 1000"))
	})

	t.Run("SplitsOnPunctuation", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"hello", "world"}, n.Normalize("hello,world! (hi)"))
	})

	t.Run("Lowercases", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"crawler"}, n.Normalize("CRAWLER"))
	})

	t.Run("EmptyInput", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, n.Normalize(""))
		assert.Empty(t, n.Normalize("   \n\t  "))
	})

	t.Run("UnicodeNormalization", func(t *testing.T) {
		t.Parallel()
		// Decomposed e + combining acute composes to the same term as
		// the precomposed form.
		composed := n.Normalize("café café")
		decomposed := n.Normalize("café café")
		assert.Equal(t, composed, decomposed)
	})

	t.Run("WebBoilerplateFiltered", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, n.Normalize("click here home page login"))
	})
}
