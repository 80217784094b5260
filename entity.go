package serprank

import (
	"context"
	"strings"
	"time"
)

// Entity is a business whose search visibility is audited.
type Entity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Keywords  []string  `json:"keywords"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the entity contains invalid fields.
func (e *Entity) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return Errorf(EINVALID, "entity name required")
	}
	if len(CleanKeywords(e.Keywords)) == 0 {
		return Errorf(EINVALID, "entity %q needs at least one keyword", e.Name)
	}
	return nil
}

// CleanKeywords trims keywords and drops blank and repeated ones,
// keeping the original order.
func CleanKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// EntityService represents a service for managing entities.
type EntityService interface {
	// CreateEntity creates a new entity.
	// Returns ECONFLICT if an entity with the same name exists.
	CreateEntity(ctx context.Context, entity *Entity) error

	// FindEntityByID retrieves an entity by ID.
	// Returns ENOTFOUND if entity does not exist.
	FindEntityByID(ctx context.Context, id string) (*Entity, error)

	// FindEntities retrieves entities matching the filter, oldest first.
	FindEntities(ctx context.Context, filter EntityFilter) ([]*Entity, error)

	// UpdateEntity updates an existing entity.
	// Returns ENOTFOUND if entity does not exist.
	UpdateEntity(ctx context.Context, id string, upd EntityUpdate) (*Entity, error)

	// DeleteEntity permanently removes an entity.
	// Returns ENOTFOUND if entity does not exist.
	DeleteEntity(ctx context.Context, id string) error
}

// EntityFilter represents a filter for FindEntities.
type EntityFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// EntityUpdate represents fields that can be updated on an entity.
type EntityUpdate struct {
	Name     *string   `json:"name"`
	Address  *string   `json:"address"`
	Phone    *string   `json:"phone"`
	Keywords *[]string `json:"keywords"`
}
