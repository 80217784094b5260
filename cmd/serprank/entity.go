package main

import (
	"context"

	"github.com/fwojciec/serprank"
)

// findEntityByName returns ENOTFOUND if no entity has the name.
func findEntityByName(ctx context.Context, entities serprank.EntityService, name string) (*serprank.Entity, error) {
	found, err := entities.FindEntities(ctx, serprank.EntityFilter{Name: &name, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, serprank.Errorf(serprank.ENOTFOUND, "entity %q not found. Use 'serprank list' to see registered entities.", name)
	}
	return found[0], nil
}
