package mock

import "github.com/crawldex/crawldex"

var _ crawldex.TermNormalizer = (*TermNormalizer)(nil)

// TermNormalizer is a mock implementation of crawldex.TermNormalizer.
type TermNormalizer struct {
	NormalizeFn func(text string) []string
}

func (n *TermNormalizer) Normalize(text string) []string {
	return n.NormalizeFn(text)
}
