package crawldex

// ExtractResult holds the visible content of one fetched page.
type ExtractResult struct {
	// Text is the page's visible text. Markup is stripped and the
	// contents of script, style and head elements are excluded.
	Text string

	// Links are the page's outbound hyperlinks as absolute URLs,
	// resolved against the page's own URL. Anchors, javascript:,
	// mailto: and tel: links are excluded.
	Links []string
}

// TextExtractor extracts visible text and outbound links from raw HTML.
type TextExtractor interface {
	// Extract parses rawHTML fetched from baseURL and returns its
	// visible text plus outbound links. Malformed input is reported
	// with code EINVALID.
	Extract(rawHTML, baseURL string) (*ExtractResult, error)
}
