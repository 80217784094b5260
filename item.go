package serprank

import "strings"

// ResultItem is one entry of a result section.
type ResultItem struct {
	// Position is the 1-based ordinal within the section, counted after
	// sponsored entries were dropped.
	Position int    `json:"position"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Address  string `json:"address"`
	Link     string `json:"link"`
}

// SectionKind identifies a result section of a search page.
type SectionKind string

// Supported section kinds, in canonical check order.
const (
	BlogPopular SectionKind = "blog-popular"
	BlogGeneral SectionKind = "blog-general"
	Web         SectionKind = "web"
	Place       SectionKind = "place"
)

// SectionKinds returns all section kinds in canonical order.
func SectionKinds() []SectionKind {
	return []SectionKind{BlogPopular, BlogGeneral, Web, Place}
}

// ParseSectionKind returns the section kind for a label such as "web".
func ParseSectionKind(s string) (SectionKind, error) {
	k := SectionKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case BlogPopular, BlogGeneral, Web, Place:
		return k, nil
	}
	return "", Errorf(EINVALID, "unknown section %q", s)
}

// Vertical returns the search page the section is found on.
// Both blog sections live on the same page.
func (k SectionKind) Vertical() Vertical {
	switch k {
	case BlogPopular, BlogGeneral:
		return VerticalBlog
	case Place:
		return VerticalPlace
	default:
		return VerticalWeb
	}
}

// MatchesAddress reports whether entries of the section are matched on their
// address rather than their snippet.
func (k SectionKind) MatchesAddress() bool {
	return k == Place
}

// Vertical identifies one search results page type.
type Vertical string

// Supported verticals.
const (
	VerticalBlog  Vertical = "blog"
	VerticalWeb   Vertical = "web"
	VerticalPlace Vertical = "place"
)
