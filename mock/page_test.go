package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/serprank"
	"github.com/fwojciec/serprank/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageSource_Acquire(t *testing.T) {
	t.Parallel()

	t.Run("delegates to AcquireFn", func(t *testing.T) {
		t.Parallel()

		var gotKeyword string
		var gotVertical serprank.Vertical
		want := &serprank.Page{Keyword: "마포치과", Vertical: serprank.VerticalBlog}
		s := &mock.PageSource{
			AcquireFn: func(_ context.Context, keyword string, vertical serprank.Vertical) (*serprank.Page, error) {
				gotKeyword = keyword
				gotVertical = vertical
				return want, nil
			},
		}

		page, err := s.Acquire(context.Background(), "마포치과", serprank.VerticalBlog)

		require.NoError(t, err)
		assert.Same(t, want, page)
		assert.Equal(t, "마포치과", gotKeyword)
		assert.Equal(t, serprank.VerticalBlog, gotVertical)
	})
}

func TestURLBuilder_SearchURL(t *testing.T) {
	t.Parallel()

	b := &mock.URLBuilder{
		SearchURLFn: func(vertical serprank.Vertical, keyword string) string {
			return "https://search.example/" + string(vertical) + "?q=" + keyword
		},
	}

	assert.Equal(t, "https://search.example/web?q=k", b.SearchURL(serprank.VerticalWeb, "k"))
}
