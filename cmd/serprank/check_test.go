package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/serprank"
	main "github.com/fwojciec/serprank/cmd/serprank"
	"github.com/fwojciec/serprank/goquery"
	"github.com/fwojciec/serprank/mock"
	"github.com/fwojciec/serprank/naver"
	"github.com/fwojciec/serprank/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webPage = `<section class="sc_new sp_ntotal"><ul class="lst_total">
<li class="bx"><a class="link_tit" href="https://a.example">마포 치과 모음</a></li>
<li class="bx"><a class="link_tit" href="https://b.example">스마일치과 공식 홈페이지</a></li>
</ul></section>`

// webOnlySource serves webPage for the web vertical and fails every other one.
func webOnlySource(t *testing.T) *mock.PageSource {
	return &mock.PageSource{AcquireFn: func(_ context.Context, keyword string, vertical serprank.Vertical) (*serprank.Page, error) {
		if vertical != serprank.VerticalWeb {
			return nil, serprank.Errorf(serprank.EUNAVAILABLE, "HTTP 503")
		}
		doc, err := goquery.Parse(webPage)
		require.NoError(t, err)
		return &serprank.Page{Keyword: keyword, Vertical: vertical, Hash: "h1", Document: doc}, nil
	}}
}

func storedEntities(list ...*serprank.Entity) *mock.EntityService {
	return &mock.EntityService{
		FindEntitiesFn: func(_ context.Context, filter serprank.EntityFilter) ([]*serprank.Entity, error) {
			if filter.Name == nil {
				return list, nil
			}
			for _, e := range list {
				if e.Name == *filter.Name {
					return []*serprank.Entity{e}, nil
				}
			}
			return nil, nil
		},
	}
}

func TestCheckCmd_Run(t *testing.T) {
	t.Parallel()

	started := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("checks, prints, saves and reports", func(t *testing.T) {
		t.Parallel()

		var saved *serprank.Run
		var reported []serprank.RankRecord
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Entities: storedEntities(&serprank.Entity{Name: "스마일치과", Keywords: []string{"마포치과"}}),
			Runs: &mock.RunService{CreateRunFn: func(_ context.Context, run *serprank.Run) error {
				saved = run
				return nil
			}},
			Checker: &rank.Checker{Source: webOnlySource(t), Rules: naver.Rules()},
			Reports: &mock.ReportWriter{WriteReportFn: func(records []serprank.RankRecord) (string, error) {
				reported = records
				return "data/rankings_20240501_090000.xlsx", nil
			}},
			Now: func() time.Time { return started },
		}

		err := (&main.CheckCmd{}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, saved)
		require.Len(t, saved.Records, 4)
		assert.Equal(t, started, saved.StartedAt)
		assert.Equal(t, saved.Records, reported)
		assert.Equal(t, serprank.Rank(2), saved.Records[2].Rank)
		assert.Equal(t, serprank.RankError, saved.Records[0].Rank)

		output := stdout.String()
		assert.Contains(t, output, "스마일치과\n  blog-popular\n    마포치과: error (HTTP 503)")
		assert.Contains(t, output, "  web\n    마포치과: #2")
		assert.Contains(t, output, "Report saved to data/rankings_20240501_090000.xlsx")
		assert.Contains(t, stderr.String(), "error 스마일치과 / 마포치과 / place: HTTP 503")
	})

	t.Run("limits sections and overrides keywords", func(t *testing.T) {
		t.Parallel()

		var saved *serprank.Run
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Entities: storedEntities(
				&serprank.Entity{Name: "스마일치과", Keywords: []string{"마포치과"}},
				&serprank.Entity{Name: "미소치과", Keywords: []string{"신촌치과"}},
			),
			Runs: &mock.RunService{CreateRunFn: func(_ context.Context, run *serprank.Run) error {
				saved = run
				return nil
			}},
			Checker: &rank.Checker{Source: webOnlySource(t), Rules: naver.Rules()},
		}

		cmd := &main.CheckCmd{Names: []string{"스마일치과"}, Sections: []string{"web,blog-general"}, Keywords: []string{"홍대치과", "합정치과"}, NoReport: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, saved.Records, 4)
		assert.Equal(t, "홍대치과", saved.Records[0].Keyword)
		assert.Equal(t, serprank.Web, saved.Records[0].Section)
		assert.Equal(t, serprank.BlogGeneral, saved.Records[1].Section)
		assert.Equal(t, "합정치과", saved.Records[2].Keyword)
	})

	t.Run("returns ENOTFOUND for an unknown entity", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Entities: storedEntities(),
		}

		err := (&main.CheckCmd{Names: []string{"미소치과"}}).Run(deps)

		assert.Equal(t, serprank.ENOTFOUND, serprank.ErrorCode(err))
		assert.Contains(t, stderr.String(), "미소치과")
	})

	t.Run("prints a hint when nothing is registered", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Entities: storedEntities(),
		}

		require.NoError(t, (&main.CheckCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "serprank add")
	})

	t.Run("returns the error when the run cannot be saved", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Entities: storedEntities(&serprank.Entity{Name: "스마일치과", Keywords: []string{"k"}}),
			Runs: &mock.RunService{CreateRunFn: func(context.Context, *serprank.Run) error {
				return errors.New("disk full")
			}},
			Checker: &rank.Checker{Source: webOnlySource(t), Rules: naver.Rules()},
		}

		err := (&main.CheckCmd{NoReport: true}).Run(deps)
		require.Error(t, err)
	})
}
