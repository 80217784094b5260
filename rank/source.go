package rank

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/serprank"
	"github.com/fwojciec/serprank/goquery"
)

var _ serprank.PageSource = (*Source)(nil)

// Source acquires result pages over the network. Each attempt waits on the
// per-host rate limiter, failed fetches are retried with backoff, and the
// HTML is parsed into a queryable document.
type Source struct {
	URLs    serprank.URLBuilder
	Fetcher serprank.Fetcher

	// PlaceFetcher, if set, is used for the place vertical, whose listing is
	// rendered by JavaScript.
	PlaceFetcher serprank.Fetcher

	RateLimiter serprank.DomainLimiter

	// RetryDelays defaults to DefaultRetryDelays when nil.
	RetryDelays []time.Duration

	// Logf, if set, receives retry notices.
	Logf LogFunc
}

// Acquire fetches and parses the result page for keyword on vertical.
func (s *Source) Acquire(ctx context.Context, keyword string, vertical serprank.Vertical) (*serprank.Page, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, serprank.Errorf(serprank.EINVALID, "keyword required")
	}

	pageURL := s.URLs.SearchURL(vertical, keyword)
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, serprank.Errorf(serprank.EINVALID, "invalid search URL %q: %v", pageURL, err)
	}

	fetcher := s.Fetcher
	if vertical == serprank.VerticalPlace && s.PlaceFetcher != nil {
		fetcher = s.PlaceFetcher
	}

	fetch := func(ctx context.Context, target string) (string, error) {
		if s.RateLimiter != nil {
			if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
				return "", err
			}
		}
		return fetcher.Fetch(ctx, target)
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetryDelays(ctx, pageURL, fetch, s.Logf, delays)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	doc, err := goquery.Parse(html)
	if err != nil {
		return nil, err
	}

	return &serprank.Page{
		Keyword:  keyword,
		Vertical: vertical,
		URL:      pageURL,
		Hash:     ComputeHash(html),
		Document: doc,
	}, nil
}

// ComputeHash computes a hash of the page content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
