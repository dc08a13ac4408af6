// Package trafilatura implements crawldex.TextExtractor using
// go-trafilatura's boilerplate-aware content extraction. Navigation,
// footers and chrome are trimmed from the text, but links are collected
// from the whole document so traversal still sees every outbound edge.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/crawldex/crawldex"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements crawldex.TextExtractor at compile time.
var _ crawldex.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page's main content text and all outbound links.
func (e *Extractor) Extract(rawHTML string, baseURL string) (*crawldex.ExtractResult, error) {
	if rawHTML == "" {
		return nil, crawldex.Errorf(crawldex.EINVALID, "empty HTML input")
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, crawldex.Errorf(crawldex.EINVALID, "invalid base URL: %v", err)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, crawldex.Errorf(crawldex.EINVALID, "content extraction failed: %v", err)
	}

	links, err := extractLinks(rawHTML, base)
	if err != nil {
		return nil, err
	}

	return &crawldex.ExtractResult{
		Text:  strings.Join(strings.Fields(result.ContentText), " "),
		Links: links,
	}, nil
}

// extractLinks walks the full document tree collecting anchor hrefs,
// resolved against base and deduplicated in document order.
func extractLinks(rawHTML string, base *url.URL) ([]string, error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, crawldex.Errorf(crawldex.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var links []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" || attr.Val == "" {
					continue
				}
				resolved := resolveHref(base, attr.Val)
				if resolved == "" {
					continue
				}
				if _, ok := seen[resolved]; !ok {
					seen[resolved] = struct{}{}
					links = append(links, resolved)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return links, nil
}

// resolveHref resolves href against base, stripping fragments. Empty
// string means the link should be skipped: unparseable, a non-HTTP
// scheme, or a self-reference.
func resolveHref(base *url.URL, href string) string {
	trimmed := strings.ToLower(strings.TrimSpace(href))
	if strings.HasPrefix(trimmed, "javascript:") ||
		strings.HasPrefix(trimmed, "mailto:") ||
		strings.HasPrefix(trimmed, "tel:") ||
		strings.HasPrefix(trimmed, "data:") ||
		strings.HasPrefix(trimmed, "#") {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}
