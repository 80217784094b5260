package serprank

import "strings"

// MatchOutcome is the result of scanning a section for an entity.
type MatchOutcome struct {
	// Found is true when an item mentioned the entity.
	Found bool

	// Rank is the position of the matched item. Zero when not found.
	Rank int

	// Item is the matched item. Zero value when not found.
	Item ResultItem

	// Absent is true when the section had no items at all. It carries no
	// meaning downstream, where absence and no match are both out of range.
	Absent bool
}

// FindMatch scans items in position order and returns the first one whose
// title, or whose section-specific secondary text, contains entityName.
// The secondary text is the address for place sections and the snippet
// otherwise. Matching is case-sensitive substring containment; the first
// match wins even if a later item matches more completely.
//
// Returns EINVALID if entityName is empty, since the empty string would
// match every item.
func FindMatch(items []ResultItem, entityName string, kind SectionKind) (MatchOutcome, error) {
	if entityName == "" {
		return MatchOutcome{}, Errorf(EINVALID, "entity name required")
	}
	if len(items) == 0 {
		return MatchOutcome{Absent: true}, nil
	}

	for _, item := range items {
		secondary := item.Body
		if kind.MatchesAddress() {
			secondary = item.Address
		}
		if strings.Contains(item.Title, entityName) || strings.Contains(secondary, entityName) {
			return MatchOutcome{Found: true, Rank: item.Position, Item: item}, nil
		}
	}
	return MatchOutcome{}, nil
}
