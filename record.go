package serprank

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Rank is a 1-based section position or one of the sentinel ranks.
type Rank int

// Sentinel ranks.
const (
	// RankOutOfRange means the section was scanned without a match.
	RankOutOfRange Rank = 0

	// RankError means the page could not be acquired.
	RankError Rank = -1
)

// Ranked reports whether r is an actual position.
func (r Rank) Ranked() bool {
	return r > 0
}

// String returns the position as a number or the sentinel label.
func (r Rank) String() string {
	switch {
	case r == RankOutOfRange:
		return "out of range"
	case r < 0:
		return "error"
	}
	return strconv.Itoa(int(r))
}

// ParseRank is the inverse of Rank.String.
func ParseRank(s string) (Rank, error) {
	switch s {
	case "out of range":
		return RankOutOfRange, nil
	case "error":
		return RankError, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, Errorf(EINVALID, "invalid rank %q", s)
	}
	return Rank(n), nil
}

// SnippetMaxLen is the number of characters kept in a record snippet.
const SnippetMaxLen = 100

// RankRecord is the outcome of checking one section for one keyword.
type RankRecord struct {
	EntityName  string      `json:"entityName"`
	Keyword     string      `json:"keyword"`
	Section     SectionKind `json:"section"`
	Rank        Rank        `json:"rank"`
	Title       string      `json:"title"`
	Link        string      `json:"link"`
	Snippet     string      `json:"snippet"`
	ErrorDetail string      `json:"errorDetail"`

	// PageHash identifies the page the record was read from.
	// Empty when acquisition failed.
	PageHash string `json:"pageHash"`
}

// Normalize converts a match outcome into a record.
// The snippet is the matched item's address for place sections and its body
// otherwise, truncated for display.
func Normalize(entityName, keyword string, kind SectionKind, outcome MatchOutcome) RankRecord {
	rec := RankRecord{
		EntityName: entityName,
		Keyword:    keyword,
		Section:    kind,
		Rank:       RankOutOfRange,
	}
	if !outcome.Found {
		return rec
	}

	snippet := outcome.Item.Body
	if kind.MatchesAddress() {
		snippet = outcome.Item.Address
	}
	rec.Rank = Rank(outcome.Rank)
	rec.Title = outcome.Item.Title
	rec.Link = outcome.Item.Link
	rec.Snippet = TruncateSnippet(snippet, SnippetMaxLen)
	return rec
}

// NormalizeFailure returns the error record for a unit whose page could not
// be acquired or scanned.
func NormalizeFailure(entityName, keyword string, kind SectionKind, err error) RankRecord {
	detail := ErrorDetail(err)
	if detail == "" {
		detail = "unknown error"
	}
	return RankRecord{
		EntityName:  entityName,
		Keyword:     keyword,
		Section:     kind,
		Rank:        RankError,
		ErrorDetail: detail,
	}
}

// TruncateSnippet shortens s to max characters and appends "..." when it was
// longer. Characters are counted as runes so Hangul text is not split
// mid-character.
func TruncateSnippet(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n == max {
			break
		}
		b.WriteRune(r)
		n++
	}
	b.WriteString("...")
	return b.String()
}
