package serprank

import "strings"

// FormatSummary formats records for terminal display, grouped by entity and
// then by section in the order they first appear. Entities are separated by
// blank lines.
func FormatSummary(records []RankRecord) string {
	if len(records) == 0 {
		return ""
	}

	var entities []string
	sections := make(map[string][]SectionKind)
	lines := make(map[string]map[SectionKind][]string)

	for _, rec := range records {
		if _, ok := lines[rec.EntityName]; !ok {
			entities = append(entities, rec.EntityName)
			lines[rec.EntityName] = make(map[SectionKind][]string)
		}
		if _, ok := lines[rec.EntityName][rec.Section]; !ok {
			sections[rec.EntityName] = append(sections[rec.EntityName], rec.Section)
		}
		lines[rec.EntityName][rec.Section] = append(lines[rec.EntityName][rec.Section],
			"    "+rec.Keyword+": "+FormatRank(rec))
	}

	parts := make([]string, 0, len(entities))
	for _, name := range entities {
		var b strings.Builder
		b.WriteString(name)
		for _, kind := range sections[name] {
			b.WriteString("\n  ")
			b.WriteString(string(kind))
			for _, line := range lines[name][kind] {
				b.WriteString("\n")
				b.WriteString(line)
			}
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

// FormatRank renders a record's rank for display: "#3", "out of range",
// or the error with its detail.
func FormatRank(rec RankRecord) string {
	switch {
	case rec.Rank.Ranked():
		return "#" + rec.Rank.String()
	case rec.Rank == RankError && rec.ErrorDetail != "":
		return "error (" + rec.ErrorDetail + ")"
	}
	return rec.Rank.String()
}
