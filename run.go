package serprank

import (
	"context"
	"time"
)

// Run is one execution of a rank check and the records it produced.
type Run struct {
	ID         string       `json:"id"`
	StartedAt  time.Time    `json:"startedAt"`
	FinishedAt time.Time    `json:"finishedAt"`
	Records    []RankRecord `json:"records"`
}

// RunService persists rank check runs.
type RunService interface {
	// CreateRun stores the run and all of its records atomically.
	// Assigns the run ID.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns retrieves runs newest first. Records are loaded,
	// restricted to filter.EntityName when it is set.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	EntityName *string `json:"entityName"`

	Limit int `json:"limit"`
}

// ReportWriter serializes records into a report.
type ReportWriter interface {
	// WriteReport writes the records and returns where the report was saved.
	// Returns EINVALID if there are no records.
	WriteReport(records []RankRecord) (path string, err error)
}
