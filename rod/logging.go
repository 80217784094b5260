package rod

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/serprank"
)

var _ serprank.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every rendered fetch. Failures are logged at warn
// level since they usually mean a place listing could not be read.
type LoggingFetcher struct {
	next   serprank.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher wraps next.
func NewLoggingFetcher(next serprank.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

func (f *LoggingFetcher) Fetch(ctx context.Context, rawURL string) (html string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		f.logger.Log(ctx, level, "render page",
			"host", hostOf(rawURL),
			"url", rawURL,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, rawURL)
}

func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
