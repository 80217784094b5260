package mock

import (
	"context"

	"github.com/fwojciec/serprank"
)

var _ serprank.EntityService = (*EntityService)(nil)

// EntityService is a mock implementation of serprank.EntityService.
type EntityService struct {
	CreateEntityFn   func(ctx context.Context, entity *serprank.Entity) error
	FindEntityByIDFn func(ctx context.Context, id string) (*serprank.Entity, error)
	FindEntitiesFn   func(ctx context.Context, filter serprank.EntityFilter) ([]*serprank.Entity, error)
	UpdateEntityFn   func(ctx context.Context, id string, upd serprank.EntityUpdate) (*serprank.Entity, error)
	DeleteEntityFn   func(ctx context.Context, id string) error
}

func (s *EntityService) CreateEntity(ctx context.Context, entity *serprank.Entity) error {
	return s.CreateEntityFn(ctx, entity)
}

func (s *EntityService) FindEntityByID(ctx context.Context, id string) (*serprank.Entity, error) {
	return s.FindEntityByIDFn(ctx, id)
}

func (s *EntityService) FindEntities(ctx context.Context, filter serprank.EntityFilter) ([]*serprank.Entity, error) {
	return s.FindEntitiesFn(ctx, filter)
}

func (s *EntityService) UpdateEntity(ctx context.Context, id string, upd serprank.EntityUpdate) (*serprank.Entity, error) {
	return s.UpdateEntityFn(ctx, id, upd)
}

func (s *EntityService) DeleteEntity(ctx context.Context, id string) error {
	return s.DeleteEntityFn(ctx, id)
}
