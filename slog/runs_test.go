package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/crawldex/crawldex"
	"github.com/crawldex/crawldex/index"
	"github.com/crawldex/crawldex/mock"
	crawlslog "github.com/crawldex/crawldex/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRunService_CreateRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.RunService{
		CreateRunFn: func(_ context.Context, _ *crawldex.Run, _ []*crawldex.Document, _ crawldex.IndexReader) error {
			return nil
		},
	}

	svc := crawlslog.NewLoggingRunService(inner, logger)
	run := &crawldex.Run{SeedURL: "https://example.test/", Capacity: 10}
	err := svc.CreateRun(context.Background(), run, nil, index.New())

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "create run")
	assert.Contains(t, output, "seed=https://example.test/")
	assert.Contains(t, output, "documents=0")
}
