package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/serprank"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	entities, err := deps.Entities.FindEntities(deps.Ctx, serprank.EntityFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serprank.ErrorMessage(err))
		return err
	}

	if len(entities) == 0 {
		fmt.Fprintln(deps.Stdout, "No entities found. Use 'serprank add' to register one.")
		return nil
	}

	for _, e := range entities {
		fmt.Fprintf(deps.Stdout, "%s  %s  [%s]\n", e.ID, e.Name, strings.Join(e.Keywords, ", "))
		if e.Address != "" {
			fmt.Fprintf(deps.Stdout, "    %s\n", e.Address)
		}
	}

	return nil
}
