package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/serprank"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ serprank.RunService = (*RunService)(nil)

// RunService implements serprank.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun stores the run and its records in one transaction. Record order
// is preserved.
func (s *RunService) CreateRun(ctx context.Context, run *serprank.Run) error {
	if run.StartedAt.IsZero() {
		return serprank.Errorf(serprank.EINVALID, "run start time required")
	}
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	id := uuid.New().String()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at)
		VALUES (?, ?, ?)
	`, id, run.StartedAt.UTC().Format(timeFormat), run.FinishedAt.UTC().Format(timeFormat)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO rank_records (run_id, position, entity_name, keyword, section, rank,
			title, link, snippet, error_detail, page_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, rec := range run.Records {
		if _, err := stmt.ExecContext(ctx, id, i, rec.EntityName, rec.Keyword, string(rec.Section), int(rec.Rank),
			rec.Title, rec.Link, rec.Snippet, rec.ErrorDetail, rec.PageHash); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	run.ID = id
	return nil
}

// FindRuns retrieves runs newest first. With an entity filter only runs that
// checked the entity are returned, each carrying only that entity's records.
func (s *RunService) FindRuns(ctx context.Context, filter serprank.RunFilter) ([]*serprank.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, started_at, finished_at FROM runs WHERE 1=1")
	if filter.EntityName != nil {
		query.WriteString(" AND EXISTS (SELECT 1 FROM rank_records r WHERE r.run_id = runs.id AND r.entity_name = ?)")
		args = append(args, *filter.EntityName)
	}
	query.WriteString(" ORDER BY started_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, 0)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	var runs []*serprank.Run
	for rows.Next() {
		var run serprank.Run
		var startedAt, finishedAt string
		if err := rows.Scan(&run.ID, &startedAt, &finishedAt); err != nil {
			rows.Close()
			return nil, err
		}
		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			rows.Close()
			return nil, err
		}
		if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
			rows.Close()
			return nil, err
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// The single connection must be released before records are queried.
	rows.Close()

	for _, run := range runs {
		if run.Records, err = s.findRecords(ctx, run.ID, filter.EntityName); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (s *RunService) findRecords(ctx context.Context, runID string, entityName *string) ([]serprank.RankRecord, error) {
	query := `
		SELECT entity_name, keyword, section, rank, title, link, snippet, error_detail, page_hash
		FROM rank_records
		WHERE run_id = ?`
	args := []any{runID}
	if entityName != nil {
		query += " AND entity_name = ?"
		args = append(args, *entityName)
	}
	query += " ORDER BY position ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []serprank.RankRecord
	for rows.Next() {
		var rec serprank.RankRecord
		var section string
		var rank int
		if err := rows.Scan(&rec.EntityName, &rec.Keyword, &section, &rank,
			&rec.Title, &rec.Link, &rec.Snippet, &rec.ErrorDetail, &rec.PageHash); err != nil {
			return nil, err
		}
		rec.Section = serprank.SectionKind(section)
		rec.Rank = serprank.Rank(rank)
		records = append(records, rec)
	}
	return records, rows.Err()
}
