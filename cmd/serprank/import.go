package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/serprank"
)

// importedEntity is one element of an import file.
type importedEntity struct {
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Phone    string   `json:"phone"`
	Keywords []string `json:"keywords"`
}

// Run executes the import command. Entities whose name is already
// registered are skipped; invalid entries abort before anything is saved.
func (c *ImportCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	var items []importedEntity
	if err := json.Unmarshal(data, &items); err != nil {
		err = serprank.Errorf(serprank.EINVALID, "invalid import file %s: %v", c.File, err)
		fmt.Fprintf(deps.Stderr, "error: %s\n", serprank.ErrorMessage(err))
		return err
	}

	entities := make([]*serprank.Entity, len(items))
	for i, item := range items {
		entities[i] = &serprank.Entity{
			Name:     item.Name,
			Address:  item.Address,
			Phone:    item.Phone,
			Keywords: item.Keywords,
		}
		if err := entities[i].Validate(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: entry %d: %s\n", i+1, serprank.ErrorMessage(err))
			return err
		}
	}

	var added, skipped int
	for _, entity := range entities {
		err := deps.Entities.CreateEntity(deps.Ctx, entity)
		switch {
		case serprank.ErrorCode(err) == serprank.ECONFLICT:
			fmt.Fprintf(deps.Stdout, "  skip %q: already registered\n", entity.Name)
			skipped++
		case err != nil:
			fmt.Fprintf(deps.Stderr, "error: %s\n", serprank.ErrorMessage(err))
			return err
		default:
			added++
		}
	}

	fmt.Fprintf(deps.Stdout, "Imported %d entities (%d skipped)\n", added, skipped)
	return nil
}
