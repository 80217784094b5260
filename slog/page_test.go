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

func TestLoggingPageSource_Acquire(t *testing.T) {
	t.Parallel()

	t.Run("logs keyword, vertical and page hash", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageSource{
			AcquireFn: func(ctx context.Context, keyword string, vertical serprank.Vertical) (*serprank.Page, error) {
				return &serprank.Page{Keyword: keyword, Vertical: vertical, Hash: "9f2c"}, nil
			},
		}

		src := serprankslog.NewLoggingPageSource(inner, logger)
		page, err := src.Acquire(context.Background(), "mapo-dental", serprank.VerticalBlog)

		require.NoError(t, err)
		assert.Equal(t, "mapo-dental", page.Keyword)
		output := buf.String()
		assert.Contains(t, output, "acquire page")
		assert.Contains(t, output, "keyword=mapo-dental")
		assert.Contains(t, output, "vertical=blog")
		assert.Contains(t, output, "hash=9f2c")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageSource{
			AcquireFn: func(ctx context.Context, keyword string, vertical serprank.Vertical) (*serprank.Page, error) {
				return nil, errors.New("connection reset")
			},
		}

		src := serprankslog.NewLoggingPageSource(inner, logger)
		_, err := src.Acquire(context.Background(), "k", serprank.VerticalWeb)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"connection reset\"")
	})
}
