package mock

import "github.com/crawldex/crawldex"

var _ crawldex.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of crawldex.TextExtractor.
type TextExtractor struct {
	ExtractFn func(rawHTML, baseURL string) (*crawldex.ExtractResult, error)
}

func (e *TextExtractor) Extract(rawHTML, baseURL string) (*crawldex.ExtractResult, error) {
	return e.ExtractFn(rawHTML, baseURL)
}
