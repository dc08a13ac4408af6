package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/crawldex/crawldex"
)

// Ensure LoggingRunService implements crawldex.RunService.
var _ crawldex.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with operation logging.
type LoggingRunService struct {
	next   crawldex.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next crawldex.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *crawldex.Run, docs []*crawldex.Document, index crawldex.IndexReader) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create run",
			"seed", run.SeedURL,
			"documents", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run, docs, index)
}

// FindRunByID delegates to the wrapped service.
func (s *LoggingRunService) FindRunByID(ctx context.Context, id string) (*crawldex.Run, error) {
	return s.next.FindRunByID(ctx, id)
}

// FindRuns delegates to the wrapped service.
func (s *LoggingRunService) FindRuns(ctx context.Context) ([]*crawldex.Run, error) {
	return s.next.FindRuns(ctx)
}

// TermCounts delegates to the wrapped service.
func (s *LoggingRunService) TermCounts(ctx context.Context, runID string, limit int) ([]crawldex.TermCount, error) {
	return s.next.TermCounts(ctx, runID, limit)
}
