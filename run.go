package crawldex

import (
	"context"
	"time"
)

// RunState identifies where a crawl run is in its lifecycle.
type RunState string

// Lifecycle states. A run moves Idle -> Running -> (Exhausted |
// CapacityReached) -> Done. Exhausted means the frontier ran dry;
// CapacityReached means the admission cap was hit and the remaining queue
// was drained without admitting more.
const (
	StateIdle            RunState = "idle"
	StateRunning         RunState = "running"
	StateExhausted       RunState = "exhausted"
	StateCapacityReached RunState = "capacity_reached"
	StateDone            RunState = "done"
)

// Run records one crawl: its configuration, how it ended and its
// aggregate counts.
type Run struct {
	ID       string   `json:"id"`
	SeedURL  string   `json:"seedUrl"`
	Capacity int      `json:"capacity"`
	MaxDepth int      `json:"maxDepth"`
	State    RunState `json:"state"`

	// Outcome is the terminal cause: StateExhausted or
	// StateCapacityReached.
	Outcome RunState `json:"outcome"`

	Documents   int `json:"documents"`
	Admitted    int `json:"admitted"`
	Failed      int `json:"failed"`
	UniqueTerms int `json:"uniqueTerms"`

	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.SeedURL == "" {
		return Errorf(EINVALID, "run seed URL required")
	}
	if r.Capacity <= 0 {
		return Errorf(EINVALID, "run capacity must be positive")
	}
	return nil
}

// TermCount pairs a term with the number of documents it occurs in.
type TermCount struct {
	Term string `json:"term"`
	Docs int    `json:"docs"`
}

// RunService persists finished crawl runs and their index snapshots for
// downstream consumers.
type RunService interface {
	// CreateRun persists a run together with its visited documents and
	// a snapshot of its inverted index.
	CreateRun(ctx context.Context, run *Run, docs []*Document, index IndexReader) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves all runs, most recent first.
	FindRuns(ctx context.Context) ([]*Run, error)

	// TermCounts returns a run's most widespread terms by document
	// frequency, descending.
	TermCounts(ctx context.Context, runID string, limit int) ([]TermCount, error)
}
