package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/serprank"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ serprank.EntityService = (*EntityService)(nil)

// EntityService implements serprank.EntityService using SQLite.
type EntityService struct {
	db *DB
}

// NewEntityService creates a new EntityService.
func NewEntityService(db *DB) *EntityService {
	return &EntityService{db: db}
}

// CreateEntity creates a new entity.
func (s *EntityService) CreateEntity(ctx context.Context, entity *serprank.Entity) error {
	if err := entity.Validate(); err != nil {
		return err
	}
	entity.Name = strings.TrimSpace(entity.Name)
	entity.Keywords = serprank.CleanKeywords(entity.Keywords)

	if err := s.checkNameFree(ctx, entity.Name, ""); err != nil {
		return err
	}

	entity.ID = uuid.New().String()
	now := time.Now().UTC()
	entity.CreatedAt = now
	entity.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entities (id, name, address, phone, keywords, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entity.ID, entity.Name, entity.Address, entity.Phone, joinKeywords(entity.Keywords),
		entity.CreatedAt.Format(timeFormat), entity.UpdatedAt.Format(timeFormat))

	return err
}

// FindEntityByID retrieves an entity by ID.
func (s *EntityService) FindEntityByID(ctx context.Context, id string) (*serprank.Entity, error) {
	entities, err := s.FindEntities(ctx, serprank.EntityFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(entities) == 0 {
		return nil, serprank.Errorf(serprank.ENOTFOUND, "entity not found")
	}
	return entities[0], nil
}

// FindEntities retrieves entities matching the filter, oldest first.
func (s *EntityService) FindEntities(ctx context.Context, filter serprank.EntityFilter) ([]*serprank.Entity, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, address, phone, keywords, created_at, updated_at FROM entities WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at ASC, rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []*serprank.Entity
	for rows.Next() {
		var entity serprank.Entity
		var keywords, createdAt, updatedAt string

		if err := rows.Scan(&entity.ID, &entity.Name, &entity.Address, &entity.Phone, &keywords,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}

		entity.Keywords = splitKeywords(keywords)
		if entity.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if entity.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		entities = append(entities, &entity)
	}

	return entities, rows.Err()
}

// UpdateEntity updates an existing entity.
func (s *EntityService) UpdateEntity(ctx context.Context, id string, upd serprank.EntityUpdate) (*serprank.Entity, error) {
	entity, err := s.FindEntityByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		entity.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Address != nil {
		entity.Address = *upd.Address
	}
	if upd.Phone != nil {
		entity.Phone = *upd.Phone
	}
	if upd.Keywords != nil {
		entity.Keywords = *upd.Keywords
	}

	if err := entity.Validate(); err != nil {
		return nil, err
	}
	entity.Keywords = serprank.CleanKeywords(entity.Keywords)

	if upd.Name != nil {
		if err := s.checkNameFree(ctx, entity.Name, id); err != nil {
			return nil, err
		}
	}

	entity.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE entities
		SET name = ?, address = ?, phone = ?, keywords = ?, updated_at = ?
		WHERE id = ?
	`, entity.Name, entity.Address, entity.Phone, joinKeywords(entity.Keywords),
		entity.UpdatedAt.Format(timeFormat), id)
	if err != nil {
		return nil, err
	}

	return entity, nil
}

// DeleteEntity permanently removes an entity. Past run records keep the
// entity name and are not removed.
func (s *EntityService) DeleteEntity(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM entities WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return serprank.Errorf(serprank.ENOTFOUND, "entity not found")
	}

	return nil
}

// checkNameFree returns ECONFLICT if another entity than exceptID uses name.
func (s *EntityService) checkNameFree(ctx context.Context, name, exceptID string) error {
	var id string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM entities WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	if id == exceptID {
		return nil
	}
	return serprank.Errorf(serprank.ECONFLICT, "entity %q already exists", name)
}

// joinKeywords stores one keyword per line. Embedded line breaks become spaces.
func joinKeywords(keywords []string) string {
	lines := make([]string, len(keywords))
	for i, k := range keywords {
		lines[i] = strings.NewReplacer("\r", " ", "\n", " ").Replace(k)
	}
	return strings.Join(lines, "\n")
}

func splitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
