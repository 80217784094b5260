package serprank

import "strings"

// SponsorPredicate reports whether an item node is an ad or sponsored entry
// that must be skipped without consuming a position.
type SponsorPredicate func(item Node) bool

// HasAny returns a SponsorPredicate matching items that contain an element
// for any of the selectors.
func HasAny(selectors ...string) SponsorPredicate {
	return func(item Node) bool {
		for _, s := range selectors {
			if len(item.Select(s)) > 0 {
				return true
			}
		}
		return false
	}
}

// Field describes how to read one value out of an item node.
type Field struct {
	// Selector locates the element inside the item. The first match is used.
	Selector string

	// Attr names the attribute to read. Empty means the element text.
	Attr string
}

// Strategy is one way of reading a section out of a page.
type Strategy struct {
	// Name identifies the markup variant in logs and tests.
	Name string

	// Container selects the section container; only the first match is
	// used. Empty means the whole document.
	Container string

	// Items selects the candidate item nodes inside the container.
	// Candidates nested inside an earlier candidate are ignored.
	Items string

	// Sponsored, if set, drops matching items before positions are assigned.
	Sponsored SponsorPredicate

	Title   Field
	Body    Field
	Address Field

	// Link defaults to the href of the Title element when its selector is empty.
	Link Field
}

// SectionRule holds the extraction strategies for one section kind.
// Strategies are tried in order until one yields at least one item.
type SectionRule struct {
	Kind       SectionKind
	Strategies []Strategy
}

// RuleSet maps each section kind to its extraction rule.
type RuleSet map[SectionKind]SectionRule

// Rule returns the rule registered for kind.
// Returns ENOTFOUND if no rule is registered.
func (rs RuleSet) Rule(kind SectionKind) (SectionRule, error) {
	rule, ok := rs[kind]
	if !ok {
		return SectionRule{}, Errorf(ENOTFOUND, "no extraction rule for section %q", kind)
	}
	return rule, nil
}

// Locate returns the ordered items of the section described by rule.
// A page without the section yields an empty slice, never an error.
func Locate(doc Document, rule SectionRule) []ResultItem {
	if doc == nil {
		return nil
	}
	for _, s := range rule.Strategies {
		if items := locateWith(doc, s); len(items) > 0 {
			return items
		}
	}
	return nil
}

func locateWith(doc Document, s Strategy) []ResultItem {
	var nodes []Node
	if s.Container == "" {
		nodes = doc.Select(s.Items)
	} else {
		containers := doc.Select(s.Container)
		if len(containers) == 0 {
			return nil
		}
		nodes = containers[0].Select(s.Items)
	}

	var items []ResultItem
	var outer Node
	for _, n := range nodes {
		// Nested candidates belong to the enclosing item.
		if outer != nil && outer.Contains(n) {
			continue
		}
		outer = n
		if s.Sponsored != nil && s.Sponsored(n) {
			continue
		}
		items = append(items, extractItem(n, s, len(items)+1))
	}
	return items
}

func extractItem(n Node, s Strategy, position int) ResultItem {
	item := ResultItem{
		Position: position,
		Title:    readField(n, s.Title),
		Body:     readField(n, s.Body),
		Address:  readField(n, s.Address),
	}
	link := s.Link
	if link.Selector == "" {
		link = Field{Selector: s.Title.Selector, Attr: "href"}
	}
	item.Link = readField(n, link)
	return item
}

// readField degrades to "" when the element is missing.
func readField(n Node, f Field) string {
	if f.Selector == "" {
		return ""
	}
	found := n.Select(f.Selector)
	if len(found) == 0 {
		return ""
	}
	if f.Attr != "" {
		return strings.TrimSpace(found[0].Attr(f.Attr))
	}
	return strings.TrimSpace(found[0].Text())
}
