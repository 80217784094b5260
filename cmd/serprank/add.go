package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/serprank"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	entity := &serprank.Entity{
		Name:     c.Name,
		Address:  c.Address,
		Phone:    c.Phone,
		Keywords: c.Keywords,
	}

	if err := deps.Entities.CreateEntity(deps.Ctx, entity); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serprank.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added %q (%s) with keywords: %s\n", entity.Name, entity.ID, strings.Join(entity.Keywords, ", "))
	return nil
}
