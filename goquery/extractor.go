// Package goquery implements crawldex.TextExtractor with a DOM walk over
// the full document. It keeps every visible text node, which suits pages
// where boilerplate-trimming extractors would discard too much.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/crawldex/crawldex"
)

// Ensure Extractor implements crawldex.TextExtractor at compile time.
var _ crawldex.TextExtractor = (*Extractor)(nil)

// Extractor extracts visible text and outbound links from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML and returns the page's visible text with
// whitespace collapsed, plus every anchor href resolved against baseURL.
// Links are deduplicated in document order; anchors pointing back at the
// page itself and non-HTTP schemes (javascript:, mailto:, tel:, data:)
// are skipped.
func (e *Extractor) Extract(rawHTML string, baseURL string) (*crawldex.ExtractResult, error) {
	if rawHTML == "" {
		return nil, crawldex.Errorf(crawldex.EINVALID, "empty HTML input")
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, crawldex.Errorf(crawldex.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, crawldex.Errorf(crawldex.EINVALID, "failed to parse HTML: %v", err)
	}

	// Links must be collected before Remove mutates the document.
	links := extractLinks(doc, base)

	doc.Find("script, style, noscript, template, head").Remove()
	text := strings.Join(strings.Fields(doc.Text()), " ")

	return &crawldex.ExtractResult{
		Text:  text,
		Links: links,
	}, nil
}

func extractLinks(doc *goquery.Document, base *url.URL) []string {
	seen := make(map[string]struct{})
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}
		links = append(links, resolved)
	})

	return links
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved URL
// is self-referential (same as base URL after stripping fragment).
func resolveURL(base *url.URL, href string) string {
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

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:") ||
		strings.HasPrefix(href, "#")
}
