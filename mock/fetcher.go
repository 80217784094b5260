package mock

import (
	"context"

	"github.com/fwojciec/serprank"
)

var _ serprank.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of serprank.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ serprank.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of serprank.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ serprank.URLBuilder = (*URLBuilder)(nil)

// URLBuilder is a mock implementation of serprank.URLBuilder.
type URLBuilder struct {
	SearchURLFn func(vertical serprank.Vertical, keyword string) string
}

func (b *URLBuilder) SearchURL(vertical serprank.Vertical, keyword string) string {
	return b.SearchURLFn(vertical, keyword)
}
