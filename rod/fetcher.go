// Package rod provides a Chrome-backed implementation of serprank.Fetcher for
// result pages whose listings are rendered by JavaScript, such as Naver place
// search.
package rod

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fwojciec/serprank"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single navigation and render.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements serprank.Fetcher at compile time.
var _ serprank.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager      *BrowserManager
	timeout      time.Duration
	userAgent    string
	waitSelector string
	browserOpts  []ManagerOption
	closed       atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-fetch timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser user agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithWaitSelector makes Fetch wait until an element matching selector is
// present before reading the HTML. A page that never renders the element
// fails with the fetch timeout.
func WithWaitSelector(selector string) Option {
	return func(f *Fetcher) {
		f.waitSelector = selector
	}
}

// WithRecycleAfter replaces the browser after n pages.
// Defaults to DefaultMaxPages.
func WithRecycleAfter(n int) Option {
	return func(f *Fetcher) {
		f.browserOpts = append(f.browserOpts, WithMaxPages(n))
	}
}

// WithBrowserLogger reports browser replacements to logger.
func WithBrowserLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.browserOpts = append(f.browserOpts, WithLogger(logger))
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(f.browserOpts...)
	if err != nil {
		return nil, err
	}
	f.manager = manager
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", serprank.Errorf(serprank.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, release, err := f.manager.OpenPage()
	if err != nil {
		return "", err
	}
	defer release()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent:      f.userAgent,
			AcceptLanguage: "ko-KR,ko;q=0.9",
		}); err != nil {
			return "", err
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", wrapContext(ctx, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", wrapContext(ctx, err)
	}
	if f.waitSelector != "" {
		if _, err := page.Element(f.waitSelector); err != nil {
			return "", wrapContext(ctx, err)
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", wrapContext(ctx, err)
	}
	return html, nil
}

// wrapContext prefers the context error so callers can test for
// context.DeadlineExceeded regardless of how rod reports it.
func wrapContext(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Recycles returns how many times the browser has been replaced.
func (f *Fetcher) Recycles() int {
	return f.manager.Recycles()
}
