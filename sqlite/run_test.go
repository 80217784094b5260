package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/serprank"
	"github.com/fwojciec/serprank/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []serprank.RankRecord {
	return []serprank.RankRecord{
		{EntityName: "스마일치과", Keyword: "마포치과", Section: serprank.BlogPopular, Rank: 2, Title: "후기", Link: "https://blog.naver.com/a/2", Snippet: "스마일치과에서...", PageHash: "abc"},
		{EntityName: "스마일치과", Keyword: "마포치과", Section: serprank.Web, Rank: serprank.RankOutOfRange, PageHash: "def"},
		{EntityName: "미소치과", Keyword: "신촌치과", Section: serprank.Place, Rank: serprank.RankError, ErrorDetail: "HTTP 503"},
	}
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns an ID and stores records in order", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		run := &serprank.Run{StartedAt: time.Now().UTC(), Records: sampleRecords()}

		require.NoError(t, svc.CreateRun(ctx, run))
		assert.NotEmpty(t, run.ID)
		assert.False(t, run.FinishedAt.IsZero())

		runs, err := svc.FindRuns(ctx, serprank.RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, run.ID, runs[0].ID)
		assert.Equal(t, sampleRecords(), runs[0].Records)
	})

	t.Run("returns EINVALID without a start time", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		err := svc.CreateRun(context.Background(), &serprank.Run{})
		assert.Equal(t, serprank.EINVALID, serprank.ErrorCode(err))
	})

	t.Run("stores a run without records", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateRun(ctx, &serprank.Run{StartedAt: time.Now()}))

		runs, err := svc.FindRuns(ctx, serprank.RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Empty(t, runs[0].Records)
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("returns runs newest first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
		older := &serprank.Run{StartedAt: base, Records: sampleRecords()}
		newer := &serprank.Run{StartedAt: base.Add(time.Hour), Records: sampleRecords()}
		require.NoError(t, svc.CreateRun(ctx, older))
		require.NoError(t, svc.CreateRun(ctx, newer))

		runs, err := svc.FindRuns(ctx, serprank.RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, newer.ID, runs[0].ID)
		assert.Equal(t, older.ID, runs[1].ID)
		assert.True(t, base.Equal(runs[1].StartedAt))
	})

	t.Run("restricts runs and records to the entity", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		withBoth := &serprank.Run{StartedAt: time.Now(), Records: sampleRecords()}
		onlySmile := &serprank.Run{StartedAt: time.Now(), Records: sampleRecords()[:1]}
		require.NoError(t, svc.CreateRun(ctx, withBoth))
		require.NoError(t, svc.CreateRun(ctx, onlySmile))
		name := "미소치과"

		runs, err := svc.FindRuns(ctx, serprank.RunFilter{EntityName: &name})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, withBoth.ID, runs[0].ID)
		require.Len(t, runs[0].Records, 1)
		assert.Equal(t, serprank.RankError, runs[0].Records[0].Rank)
		assert.Equal(t, "HTTP 503", runs[0].Records[0].ErrorDetail)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		for range 3 {
			require.NoError(t, svc.CreateRun(ctx, &serprank.Run{StartedAt: time.Now(), Records: sampleRecords()}))
		}

		runs, err := svc.FindRuns(ctx, serprank.RunFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})
}
