package main

import (
	"fmt"

	"github.com/fwojciec/serprank"
)

// Run executes the history command. Each run lists the entity's records;
// a rank that differs from the previous run is followed by the old rank,
// and a page identical to the previous run's is marked.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	entity, err := findEntityByName(deps.Ctx, deps.Entities, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serprank.ErrorMessage(err))
		return err
	}

	// One extra run gives the oldest shown run something to compare with.
	limit := c.Limit
	if limit > 0 {
		limit++
	}
	runs, err := deps.Runs.FindRuns(deps.Ctx, serprank.RunFilter{EntityName: &entity.Name, Limit: limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serprank.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintf(deps.Stdout, "No runs recorded for %q. Use 'serprank check' to run one.\n", entity.Name)
		return nil
	}

	shown := runs
	if c.Limit > 0 && len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}

	for i, run := range shown {
		var previous map[unitKey]serprank.RankRecord
		if i+1 < len(runs) {
			previous = indexRecords(runs[i+1].Records)
		}

		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "%s  (%s)\n", run.StartedAt.Local().Format("2006-01-02 15:04"), run.ID)
		for _, rec := range run.Records {
			fmt.Fprintf(deps.Stdout, "  %-13s %s: %s%s\n", rec.Section, rec.Keyword, serprank.FormatRank(rec), changeNote(rec, previous))
		}
	}

	return nil
}

type unitKey struct {
	keyword string
	section serprank.SectionKind
}

func indexRecords(records []serprank.RankRecord) map[unitKey]serprank.RankRecord {
	m := make(map[unitKey]serprank.RankRecord, len(records))
	for _, rec := range records {
		m[unitKey{rec.Keyword, rec.Section}] = rec
	}
	return m
}

func changeNote(rec serprank.RankRecord, previous map[unitKey]serprank.RankRecord) string {
	prev, ok := previous[unitKey{rec.Keyword, rec.Section}]
	if !ok {
		return ""
	}
	if prev.Rank != rec.Rank {
		return fmt.Sprintf("  (was %s)", serprank.FormatRank(prev))
	}
	if rec.PageHash != "" && rec.PageHash == prev.PageHash {
		return "  (same page)"
	}
	return ""
}
