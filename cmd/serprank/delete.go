package main

import (
	"fmt"

	"github.com/fwojciec/serprank"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return serprank.Errorf(serprank.EINVALID, "use --force to confirm deletion")
	}

	entity, err := findEntityByName(deps.Ctx, deps.Entities, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serprank.ErrorMessage(err))
		return err
	}

	if err := deps.Entities.DeleteEntity(deps.Ctx, entity.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serprank.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q\n", entity.Name)
	return nil
}
