package crawldex

import "time"

// Document records one indexed page: where it came from and what the
// indexer saw in it. The page's text itself is transient; only the
// aggregated counts survive, inside the inverted index.
type Document struct {
	URL         string    `json:"url"`
	ContentHash string    `json:"contentHash"`
	Terms       int       `json:"terms"`
	Depth       int       `json:"depth"`
	Position    int       `json:"position"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	return nil
}
