package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos. El ledger consume este
// catálogo como directorio de solo lectura (resolución code -> product_id).
type ProductUseCase struct {
	repo  repository.ProductRepository
	audit AuditSink
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, audit AuditSink) *ProductUseCase {
	return &ProductUseCase{repo: repo, audit: audit}
}

// Create registra un producto nuevo. El código debe ser único.
func (uc *ProductUseCase) Create(ctx context.Context, p *entity.Product, actor string) (*entity.Product, error) {
	if p.Code == "" || p.Article == "" {
		return nil, domain.ErrInvalidInput
	}
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now()
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, "CREATE", actor, "products", map[string]any{"product_id": p.ID, "code": p.Code})
	return p, nil
}

// GetByID devuelve un producto por id.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// GetByCode devuelve un producto por su código de catálogo.
func (uc *ProductUseCase) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Update actualiza un producto. El código no se modifica (es llave del ledger).
func (uc *ProductUseCase) Update(ctx context.Context, p *entity.Product, actor string) (*entity.Product, error) {
	existing, err := uc.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	p.Code = existing.Code
	p.CreatedAt = existing.CreatedAt
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, "UPDATE", actor, "products", map[string]any{"product_id": p.ID})
	return p, nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return uc.repo.List(ctx, limit, offset)
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id, actor string) error {
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
	uc.audit.Record(ctx, "DELETE", actor, "products", map[string]any{"product_id": id})
	return nil
}
