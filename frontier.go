package crawldex

// Link is a frontier entry: a normalized URL plus the number of hops
// between it and the seed (the seed itself is depth 0).
type Link struct {
	URL   string
	Depth int
}

// Frontier manages the crawl's pending URLs as a LIFO stack with a hard
// cap on the total number of links ever admitted. Admission counts every
// link ever pushed, not the current stack depth: once the cap is reached
// nothing further is admitted, no matter how many entries have since been
// popped.
type Frontier interface {
	// Push admits link unless the admission cap has been reached or
	// the URL has already been admitted. Returns false when the link
	// is dropped; a drop is not an error.
	Push(link Link) bool

	// Pop removes and returns the most recently pushed link.
	// The bool result is false when the frontier is empty.
	Pop() (Link, bool)

	// Len returns the number of links currently queued.
	Len() int

	// Seen reports whether the URL has ever been admitted, queued or
	// already popped.
	Seen(url string) bool

	// AtCapacity reports whether the admission cap has been reached.
	// The traversal engine uses it to stop expanding links entirely
	// rather than relying on individual pushes being rejected.
	AtCapacity() bool

	// Admitted returns the total number of links ever admitted,
	// including ones already popped.
	Admitted() int
}
