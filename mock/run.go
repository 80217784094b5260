package mock

import (
	"context"

	"github.com/fwojciec/serprank"
)

var _ serprank.RunService = (*RunService)(nil)

// RunService is a mock implementation of serprank.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *serprank.Run) error
	FindRunsFn  func(ctx context.Context, filter serprank.RunFilter) ([]*serprank.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *serprank.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter serprank.RunFilter) ([]*serprank.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

var _ serprank.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of serprank.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(records []serprank.RankRecord) (string, error)
}

func (w *ReportWriter) WriteReport(records []serprank.RankRecord) (string, error) {
	return w.WriteReportFn(records)
}
