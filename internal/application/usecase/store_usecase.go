package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
)

// StoreUseCase CRUD de tiendas/bodegas.
type StoreUseCase struct {
	repo  repository.StoreRepository
	audit AuditSink
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository, audit AuditSink) *StoreUseCase {
	return &StoreUseCase{repo: repo, audit: audit}
}

// Create registra una tienda nueva.
func (uc *StoreUseCase) Create(ctx context.Context, s *entity.Store, actor string) (*entity.Store, error) {
	if s.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s.ID = uuid.New().String()
	s.CreatedAt = time.Now()
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, "CREATE", actor, "stores", map[string]any{"store_id": s.ID, "name": s.Name})
	return s, nil
}

// GetByID devuelve una tienda por id.
func (uc *StoreUseCase) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// Update actualiza nombre y dirección.
func (uc *StoreUseCase) Update(ctx context.Context, s *entity.Store, actor string) (*entity.Store, error) {
	existing, err := uc.repo.GetByID(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	s.CreatedAt = existing.CreatedAt
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, "UPDATE", actor, "stores", map[string]any{"store_id": s.ID})
	return s, nil
}

// List lista tiendas con paginación.
func (uc *StoreUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Store, error) {
	return uc.repo.List(ctx, limit, offset)
}

// Delete elimina una tienda.
func (uc *StoreUseCase) Delete(ctx context.Context, id, actor string) error {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.audit.Record(ctx, "DELETE", actor, "stores", map[string]any{"store_id": id})
	return nil
}
