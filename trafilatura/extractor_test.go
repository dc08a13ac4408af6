package trafilatura_test

import (
	"testing"

	"github.com/crawldex/crawldex"
	"github.com/crawldex/crawldex/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements crawldex.TextExtractor at compile time.
var _ crawldex.TextExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article>
<h1>Documentation</h1>
<p>This is important documentation content that should be extracted.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html, "https://example.test/docs/intro")

		require.NoError(t, err)
		assert.Contains(t, result.Text, "important documentation content")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Article Title</h1>
<p>Article body with substantive content for readers.</p>
</article>
<footer>
<p>Copyright 2024 Example Corp</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html, "https://example.test/article")

		require.NoError(t, err)
		assert.Contains(t, result.Text, "substantive content")
		assert.NotContains(t, result.Text, "Copyright 2024 Example Corp")
	})

	t.Run("collects links from the whole document", func(t *testing.T) {
		t.Parallel()

		// Links live in trimmed boilerplate regions but must still be
		// discovered for traversal.
		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/docs/intro">Intro</a><a href="/docs/install">Install</a></nav>
<article>
<h1>Guide</h1>
<p>Body text long enough for the extractor to keep as content.</p>
<p>See <a href="https://other.test/ref">the reference</a> for details.</p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html, "https://example.test/docs/guide")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.test/docs/intro",
			"https://example.test/docs/install",
			"https://other.test/ref",
		}, result.Links)
	})

	t.Run("skips non-HTTP and self links", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<p>Content body with enough words to register as the main text.</p>
<p><a href="mailto:a@example.test">mail</a>
<a href="javascript:void(0)">js</a>
<a href="#section">anchor</a>
<a href="https://example.test/page">self</a>
<a href="/next">next</a></p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html, "https://example.test/page")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.test/next"}, result.Links)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("", "https://example.test/")

		require.Error(t, err)
		assert.Equal(t, crawldex.EINVALID, crawldex.ErrorCode(err))
	})

	t.Run("collapses whitespace in text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
<p>First   paragraph with spacing.</p>
<p>Second paragraph follows here.</p>
</article></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html, "https://example.test/")

		require.NoError(t, err)
		assert.NotContains(t, result.Text, "  ")
		assert.Contains(t, result.Text, "First paragraph")
	})
}
