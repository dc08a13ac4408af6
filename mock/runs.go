package mock

import (
	"context"

	"github.com/crawldex/crawldex"
)

var _ crawldex.RunService = (*RunService)(nil)

// RunService is a mock implementation of crawldex.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *crawldex.Run, docs []*crawldex.Document, index crawldex.IndexReader) error
	FindRunByIDFn func(ctx context.Context, id string) (*crawldex.Run, error)
	FindRunsFn    func(ctx context.Context) ([]*crawldex.Run, error)
	TermCountsFn  func(ctx context.Context, runID string, limit int) ([]crawldex.TermCount, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *crawldex.Run, docs []*crawldex.Document, index crawldex.IndexReader) error {
	return s.CreateRunFn(ctx, run, docs, index)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*crawldex.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context) ([]*crawldex.Run, error) {
	return s.FindRunsFn(ctx)
}

func (s *RunService) TermCounts(ctx context.Context, runID string, limit int) ([]crawldex.TermCount, error) {
	return s.TermCountsFn(ctx, runID, limit)
}
