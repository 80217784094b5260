// Package rank orchestrates rank checks: it acquires result pages for each
// keyword and runs the extraction core over every requested section.
package rank

import (
	"context"
	"sync"

	"github.com/fwojciec/serprank"
	"golang.org/x/sync/errgroup"
)

// UnitState is the lifecycle state of one (keyword, section) check.
type UnitState int

// Unit states. A unit moves Pending → Fetching → Extracting → Done, or from
// Pending or Fetching to Failed.
const (
	UnitPending UnitState = iota
	UnitFetching
	UnitExtracting
	UnitDone
	UnitFailed
)

// String returns the state name.
func (s UnitState) String() string {
	switch s {
	case UnitPending:
		return "pending"
	case UnitFetching:
		return "fetching"
	case UnitExtracting:
		return "extracting"
	case UnitDone:
		return "done"
	case UnitFailed:
		return "failed"
	}
	return "unknown"
}

// ProgressEvent reports a unit state change.
type ProgressEvent struct {
	Entity  string
	Keyword string
	Section serprank.SectionKind
	State   UnitState

	// Record is set for UnitDone and UnitFailed.
	Record *serprank.RankRecord

	// Error is set for UnitFailed.
	Error error
}

// ProgressFunc is a callback for reporting check progress.
type ProgressFunc func(event ProgressEvent)

// Checker runs rank checks against a page source.
type Checker struct {
	Source serprank.PageSource
	Rules  serprank.RuleSet

	// Concurrency bounds how many entities CheckAll checks at once.
	// Defaults to 1.
	Concurrency int
}

// acquired is the memoized outcome of one page acquisition.
type acquired struct {
	page *serprank.Page
	err  error
}

// CheckEntity checks every keyword against every requested section and
// returns one record per (keyword, section), keywords outer, sections inner.
// An empty kinds slice means all sections in canonical order.
//
// Sections sharing a vertical share one page acquisition per keyword.
// Acquisition failures become error records; they never abort the
// remaining checks. The only error returned is EINVALID for an empty
// entity name.
func (c *Checker) CheckEntity(ctx context.Context, entityName string, keywords []string, kinds []serprank.SectionKind, progress ProgressFunc) ([]serprank.RankRecord, error) {
	if entityName == "" {
		return nil, serprank.Errorf(serprank.EINVALID, "entity name required")
	}
	if len(kinds) == 0 {
		kinds = serprank.SectionKinds()
	}
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	records := make([]serprank.RankRecord, 0, len(keywords)*len(kinds))
	for _, keyword := range keywords {
		pages := make(map[serprank.Vertical]acquired)
		for _, kind := range kinds {
			rec := c.checkUnit(ctx, entityName, keyword, kind, pages, progress)
			records = append(records, rec)
		}
	}
	return records, nil
}

func (c *Checker) checkUnit(ctx context.Context, entityName, keyword string, kind serprank.SectionKind, pages map[serprank.Vertical]acquired, progress ProgressFunc) serprank.RankRecord {
	event := ProgressEvent{Entity: entityName, Keyword: keyword, Section: kind}
	emit := func(state UnitState) {
		event.State = state
		progress(event)
	}
	fail := func(err error) serprank.RankRecord {
		rec := serprank.NormalizeFailure(entityName, keyword, kind, err)
		event.Record = &rec
		event.Error = err
		emit(UnitFailed)
		return rec
	}

	emit(UnitPending)

	rule, err := c.Rules.Rule(kind)
	if err != nil {
		return fail(err)
	}

	emit(UnitFetching)
	vertical := kind.Vertical()
	a, ok := pages[vertical]
	if !ok {
		a.page, a.err = c.Source.Acquire(ctx, keyword, vertical)
		if a.err == nil && a.page == nil {
			a.err = serprank.Errorf(serprank.EINTERNAL, "no page returned for %q", keyword)
		}
		pages[vertical] = a
	}
	if a.err != nil {
		return fail(a.err)
	}

	emit(UnitExtracting)
	items := serprank.Locate(a.page.Document, rule)
	outcome, err := serprank.FindMatch(items, entityName, kind)
	if err != nil {
		return fail(err)
	}

	rec := serprank.Normalize(entityName, keyword, kind, outcome)
	rec.PageHash = a.page.Hash
	event.Record = &rec
	emit(UnitDone)
	return rec
}

// CheckAll checks every entity with its own keywords and concatenates the
// records in entity order. Entities are checked concurrently up to
// Concurrency; progress calls are serialized.
//
// Returns EINVALID before doing any work if an entity fails validation.
func (c *Checker) CheckAll(ctx context.Context, entities []*serprank.Entity, kinds []serprank.SectionKind, progress ProgressFunc) ([]serprank.RankRecord, error) {
	for _, e := range entities {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}

	if progress != nil {
		var mu sync.Mutex
		next := progress
		progress = func(event ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			next(event)
		}
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([][]serprank.RankRecord, len(entities))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, e := range entities {
		g.Go(func() error {
			records, err := c.CheckEntity(ctx, e.Name, serprank.CleanKeywords(e.Keywords), kinds, progress)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []serprank.RankRecord
	for _, records := range results {
		all = append(all, records...)
	}
	return all, nil
}
