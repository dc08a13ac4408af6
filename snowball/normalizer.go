// Package snowball implements crawldex.TermNormalizer using the Snowball
// English stemmer. Text is Unicode-normalized, tokenized into alphanumeric
// runs, lowercased, filtered against a stop word list, and stemmed.
package snowball

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/crawldex/crawldex"
	"github.com/kljensen/snowball"
	"golang.org/x/text/unicode/norm"
)

// Compile-time interface verification.
var _ crawldex.TermNormalizer = (*Normalizer)(nil)

// Normalizer turns extracted page text into index terms. The zero value
// is ready to use.
type Normalizer struct{}

// New creates a Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Normalize tokenizes text and returns the sequence of index terms,
// preserving order and multiplicity. Tokens of two characters or fewer,
// numeric tokens and stop words are dropped; the rest are stemmed.
func (n *Normalizer) Normalize(text string) []string {
	text = norm.NFC.String(text)

	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	terms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.ToLower(token)
		if _, ok := stopWords[token]; ok {
			continue
		}
		if len(token) <= 2 {
			continue
		}
		if isNumber(token) {
			continue
		}

		stemmed, err := snowball.Stem(token, "english", true)
		if err != nil || stemmed == "" {
			stemmed = token
		}
		terms = append(terms, stemmed)
	}
	return terms
}

func isNumber(token string) bool {
	_, err := strconv.ParseFloat(token, 64)
	return err == nil
}
