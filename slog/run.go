package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/serprank"
)

// Ensure LoggingRunService implements serprank.RunService.
var _ serprank.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with logging.
type LoggingRunService struct {
	next   serprank.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next serprank.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the saved run.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *serprank.Run) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create run",
			"id", run.ID,
			"records", len(run.Records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run)
}

// FindRuns delegates to the wrapped service and logs the lookup.
func (s *LoggingRunService) FindRuns(ctx context.Context, filter serprank.RunFilter) (runs []*serprank.Run, err error) {
	defer func(begin time.Time) {
		var entity string
		if filter.EntityName != nil {
			entity = *filter.EntityName
		}
		s.logger.Info("find runs",
			"entity", entity,
			"count", len(runs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRuns(ctx, filter)
}

// Ensure LoggingReportWriter implements serprank.ReportWriter.
var _ serprank.ReportWriter = (*LoggingReportWriter)(nil)

// LoggingReportWriter wraps a ReportWriter with logging.
type LoggingReportWriter struct {
	next   serprank.ReportWriter
	logger *slog.Logger
}

// NewLoggingReportWriter creates a new LoggingReportWriter.
func NewLoggingReportWriter(next serprank.ReportWriter, logger *slog.Logger) *LoggingReportWriter {
	return &LoggingReportWriter{next: next, logger: logger}
}

// WriteReport delegates to the wrapped writer and logs the output path.
func (w *LoggingReportWriter) WriteReport(records []serprank.RankRecord) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write report",
			"path", path,
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteReport(records)
}
