package crawldex

// TermNormalizer reduces free text to a sequence of index terms.
type TermNormalizer interface {
	// Normalize tokenizes text on word boundaries, drops stop words
	// and other non-terms, and stems the survivors. The returned
	// sequence preserves occurrence counts; its order carries no
	// meaning to the index.
	Normalize(text string) []string
}
