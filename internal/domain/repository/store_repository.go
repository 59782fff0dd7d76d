package repository

import (
	"context"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para tiendas/bodegas.
type StoreRepository interface {
	Create(ctx context.Context, s *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	Update(ctx context.Context, s *entity.Store) error
	List(ctx context.Context, limit, offset int) ([]*entity.Store, error)
	Delete(ctx context.Context, id string) error
}
