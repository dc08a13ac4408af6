package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/crawldex/crawldex"
	"github.com/crawldex/crawldex/index"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ crawldex.RunService = (*RunService)(nil)

// RunService implements crawldex.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun persists a finished run along with its visited documents and
// an index snapshot with TF-IDF weights. Everything is written in a
// single transaction so a run is either fully recorded or not at all.
func (s *RunService) CreateRun(ctx context.Context, run *crawldex.Run, docs []*crawldex.Document, idx crawldex.IndexReader) error {
	if err := run.Validate(); err != nil {
		return err
	}

	weights, err := index.ComputeWeights(idx)
	if err != nil {
		return err
	}

	run.ID = uuid.New().String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, seed_url, capacity, max_depth, state, outcome,
			documents, admitted, failed, unique_terms, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.SeedURL, run.Capacity, run.MaxDepth, string(run.State), string(run.Outcome),
		run.Documents, run.Admitted, run.Failed, run.UniqueTerms,
		run.StartedAt.Format(time.RFC3339), run.FinishedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	// Documents are keyed by URL in the index; postings and lengths
	// reference them by row ID.
	docIDs := make(map[string]string, len(docs))
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return err
		}
		id := uuid.New().String()
		docIDs[doc.URL] = id

		_, err = tx.ExecContext(ctx, `
			INSERT INTO documents (id, run_id, url, content_hash, terms, depth, position, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, id, run.ID, doc.URL, doc.ContentHash, doc.Terms, doc.Depth, doc.Position,
			doc.FetchedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	lastTerm := ""
	for _, p := range weights.Postings {
		// Postings arrive sorted by term, so each distinct term is
		// inserted exactly once.
		if p.Term != lastTerm {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO terms (run_id, term, df, idf) VALUES (?, ?, ?, ?)
			`, run.ID, p.Term, p.DF, p.IDF)
			if err != nil {
				return err
			}
			lastTerm = p.Term
		}

		docID, ok := docIDs[p.DocID]
		if !ok {
			return crawldex.Errorf(crawldex.EINTERNAL, "posting references unknown document %q", p.DocID)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO postings (run_id, term, document_id, tf, tfidf) VALUES (?, ?, ?, ?, ?)
		`, run.ID, p.Term, docID, p.TF, p.TFIDF)
		if err != nil {
			return err
		}
	}

	for url, length := range weights.DocLengths {
		docID, ok := docIDs[url]
		if !ok {
			return crawldex.Errorf(crawldex.EINTERNAL, "length references unknown document %q", url)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO doc_lengths (run_id, document_id, length) VALUES (?, ?, ?)
		`, run.ID, docID, length)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*crawldex.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seed_url, capacity, max_depth, state, outcome,
			documents, admitted, failed, unique_terms, started_at, finished_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, crawldex.Errorf(crawldex.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// FindRuns retrieves all runs, most recent first.
func (s *RunService) FindRuns(ctx context.Context) ([]*crawldex.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seed_url, capacity, max_depth, state, outcome,
			documents, admitted, failed, unique_terms, started_at, finished_at
		FROM runs
		ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*crawldex.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// TermCounts returns a run's terms ordered by document frequency,
// descending, ties broken alphabetically.
func (s *RunService) TermCounts(ctx context.Context, runID string, limit int) ([]crawldex.TermCount, error) {
	if _, err := s.FindRunByID(ctx, runID); err != nil {
		return nil, err
	}

	query := `
		SELECT term, df
		FROM terms
		WHERE run_id = ?
		ORDER BY df DESC, term ASC
	`
	args := []any{runID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []crawldex.TermCount
	for rows.Next() {
		var tc crawldex.TermCount
		if err := rows.Scan(&tc.Term, &tc.Docs); err != nil {
			return nil, err
		}
		counts = append(counts, tc)
	}

	return counts, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*crawldex.Run, error) {
	var run crawldex.Run
	var state, outcome, startedAt, finishedAt string

	err := row.Scan(&run.ID, &run.SeedURL, &run.Capacity, &run.MaxDepth, &state, &outcome,
		&run.Documents, &run.Admitted, &run.Failed, &run.UniqueTerms, &startedAt, &finishedAt)
	if err != nil {
		return nil, err
	}

	run.State = crawldex.RunState(state)
	run.Outcome = crawldex.RunState(outcome)
	if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
		return nil, err
	}

	return &run, nil
}
