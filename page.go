package serprank

import "context"

// Node is an element of a parsed page that section rules can query.
type Node interface {
	// Select returns the descendants matching a CSS selector in document order.
	Select(selector string) []Node

	// Text returns the combined text of the node and its descendants.
	Text() string

	// Attr returns the value of the named attribute, or "" if absent.
	Attr(name string) string

	// Contains reports whether other is a descendant of the node.
	Contains(other Node) bool
}

// Document is a parsed search result page.
type Document interface {
	// Select returns the elements matching a CSS selector in document order.
	Select(selector string) []Node
}

// Page is an acquired and parsed search result page.
type Page struct {
	Keyword  string
	Vertical Vertical
	URL      string

	// Hash identifies the raw HTML so identical pages can be recognized
	// across runs.
	Hash string

	Document Document
}

// PageSource acquires parsed result pages for a keyword.
// Implementations hide URL construction, transport, throttling, retries
// and parsing. A failed acquisition is reported as an error; callers turn
// it into an error record for the affected sections.
type PageSource interface {
	Acquire(ctx context.Context, keyword string, vertical Vertical) (*Page, error)
}
