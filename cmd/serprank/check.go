package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/serprank"
	"github.com/fwojciec/serprank/rank"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	kinds, err := c.sectionKinds()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serprank.ErrorMessage(err))
		return err
	}

	entities, err := c.entities(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serprank.ErrorMessage(err))
		return err
	}
	if len(entities) == 0 {
		fmt.Fprintln(deps.Stdout, "No entities found. Use 'serprank add' to register one.")
		return nil
	}

	if len(c.Keywords) > 0 {
		for _, e := range entities {
			e.Keywords = c.Keywords
		}
	}

	progress := func(event rank.ProgressEvent) {
		if event.State == rank.UnitFailed {
			fmt.Fprintf(deps.Stderr, "  error %s / %s / %s: %s\n",
				event.Entity, event.Keyword, event.Section, event.Record.ErrorDetail)
		}
	}

	run := &serprank.Run{StartedAt: deps.now()}
	records, err := deps.Checker.CheckAll(deps.Ctx, entities, kinds, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serprank.ErrorMessage(err))
		return err
	}
	run.FinishedAt = deps.now()
	run.Records = records

	fmt.Fprintln(deps.Stdout, serprank.FormatSummary(records))

	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "error: saving run: %s\n", serprank.ErrorMessage(err))
		return err
	}

	if c.NoReport || deps.Reports == nil || len(records) == 0 {
		return nil
	}
	path, err := deps.Reports.WriteReport(records)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: writing report: %s\n", serprank.ErrorDetail(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "\nReport saved to %s\n", path)
	return nil
}

func (c *CheckCmd) sectionKinds() ([]serprank.SectionKind, error) {
	var kinds []serprank.SectionKind
	for _, s := range c.Sections {
		for _, label := range strings.Split(s, ",") {
			kind, err := serprank.ParseSectionKind(label)
			if err != nil {
				return nil, err
			}
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}

func (c *CheckCmd) entities(deps *Dependencies) ([]*serprank.Entity, error) {
	if len(c.Names) == 0 {
		return deps.Entities.FindEntities(deps.Ctx, serprank.EntityFilter{})
	}
	entities := make([]*serprank.Entity, 0, len(c.Names))
	for _, name := range c.Names {
		entity, err := findEntityByName(deps.Ctx, deps.Entities, name)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
