// Package cache memoizes acquired result pages so entities that share
// keywords within one run reuse the same fetch.
package cache

import (
	"context"
	"time"

	"github.com/fwojciec/serprank"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long an acquired page is reused.
const DefaultTTL = 10 * time.Minute

var _ serprank.PageSource = (*PageSource)(nil)

// PageSource wraps a PageSource with an in-memory TTL cache.
// Failed acquisitions are not cached. Concurrent requests for the same page
// share one acquisition. PageSource is safe for concurrent use.
type PageSource struct {
	next  serprank.PageSource
	pages *gocache.Cache
	group singleflight.Group
}

// NewPageSource creates a cache in front of next. A ttl of zero or less
// uses DefaultTTL.
func NewPageSource(next serprank.PageSource, ttl time.Duration) *PageSource {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PageSource{
		next:  next,
		pages: gocache.New(ttl, 2*ttl),
	}
}

// Acquire returns the cached page for (keyword, vertical), acquiring it from
// the wrapped source on a miss.
func (s *PageSource) Acquire(ctx context.Context, keyword string, vertical serprank.Vertical) (*serprank.Page, error) {
	key := string(vertical) + "\x00" + keyword
	if v, ok := s.pages.Get(key); ok {
		return v.(*serprank.Page), nil
	}

	// The shared acquisition outlives any single caller; each caller stops
	// waiting when its own context ends.
	flightCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		page, err := s.next.Acquire(flightCtx, keyword, vertical)
		if err != nil {
			return nil, err
		}
		s.pages.SetDefault(key, page)
		return page, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*serprank.Page), nil
	}
}

// Len returns the number of cached pages, including expired ones not yet
// evicted.
func (s *PageSource) Len() int {
	return s.pages.ItemCount()
}

// Flush drops every cached page.
func (s *PageSource) Flush() {
	s.pages.Flush()
}
