package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/serprank"
	"github.com/fwojciec/serprank/mock"
	serprankslog "github.com/fwojciec/serprank/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRunService(t *testing.T) {
	t.Parallel()

	t.Run("logs created run with record count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RunService{
			CreateRunFn: func(ctx context.Context, run *serprank.Run) error {
				run.ID = "run-1"
				return nil
			},
		}

		svc := serprankslog.NewLoggingRunService(inner, logger)
		err := svc.CreateRun(context.Background(), &serprank.Run{Records: make([]serprank.RankRecord, 4)})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "create run")
		assert.Contains(t, output, "id=run-1")
		assert.Contains(t, output, "records=4")
	})

	t.Run("logs run lookup with entity filter", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RunService{
			FindRunsFn: func(ctx context.Context, filter serprank.RunFilter) ([]*serprank.Run, error) {
				return []*serprank.Run{{ID: "a"}, {ID: "b"}}, nil
			},
		}
		name := "smile"

		svc := serprankslog.NewLoggingRunService(inner, logger)
		runs, err := svc.FindRuns(context.Background(), serprank.RunFilter{EntityName: &name})

		require.NoError(t, err)
		assert.Len(t, runs, 2)
		output := buf.String()
		assert.Contains(t, output, "find runs")
		assert.Contains(t, output, "entity=smile")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RunService{
			CreateRunFn: func(ctx context.Context, run *serprank.Run) error {
				return errors.New("disk full")
			},
		}

		svc := serprankslog.NewLoggingRunService(inner, logger)
		err := svc.CreateRun(context.Background(), &serprank.Run{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}

func TestLoggingReportWriter_WriteReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ReportWriter{
		WriteReportFn: func(records []serprank.RankRecord) (string, error) {
			return "data/rankings_20240101_120000.xlsx", nil
		},
	}

	w := serprankslog.NewLoggingReportWriter(inner, logger)
	path, err := w.WriteReport(make([]serprank.RankRecord, 2))

	require.NoError(t, err)
	assert.Equal(t, "data/rankings_20240101_120000.xlsx", path)
	output := buf.String()
	assert.Contains(t, output, "write report")
	assert.Contains(t, output, "path=data/rankings_20240101_120000.xlsx")
	assert.Contains(t, output, "records=2")
}
