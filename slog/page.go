// Package slog provides logging decorators for serprank services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/serprank"
)

// Ensure LoggingPageSource implements serprank.PageSource.
var _ serprank.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with logging.
type LoggingPageSource struct {
	next   serprank.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next serprank.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// Acquire delegates to the wrapped source and logs the acquisition.
func (s *LoggingPageSource) Acquire(ctx context.Context, keyword string, vertical serprank.Vertical) (page *serprank.Page, err error) {
	defer func(begin time.Time) {
		var hash string
		if page != nil {
			hash = page.Hash
		}
		s.logger.Info("acquire page",
			"keyword", keyword,
			"vertical", string(vertical),
			"hash", hash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Acquire(ctx, keyword, vertical)
}
