package naver

import (
	"net/url"
	"strings"

	"github.com/fwojciec/serprank"
)

// DefaultBaseURL is the Naver search endpoint.
const DefaultBaseURL = "https://search.naver.com/search.naver"

// Endpoint builds search URLs against a base URL.
// The zero value uses DefaultBaseURL.
type Endpoint struct {
	BaseURL string
}

// SearchURL returns the result page URL for keyword on the given vertical.
// The web vertical is the integrated search page and carries no "where"
// parameter.
func (e Endpoint) SearchURL(vertical serprank.Vertical, keyword string) string {
	base := e.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("?")
	switch vertical {
	case serprank.VerticalBlog:
		b.WriteString("where=blog&")
	case serprank.VerticalPlace:
		b.WriteString("where=place&")
	}
	b.WriteString("query=")
	b.WriteString(url.QueryEscape(keyword))
	return b.String()
}

// SearchURL returns the result page URL on the default endpoint.
func SearchURL(vertical serprank.Vertical, keyword string) string {
	return Endpoint{}.SearchURL(vertical, keyword)
}
