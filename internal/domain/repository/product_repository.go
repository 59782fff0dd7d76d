package repository

import (
	"context"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
)

// ProductRepository define el puerto del catálogo de productos. GetByCode es
// el directorio que usa el ledger para resolver el código digitado por el
// usuario. Los Get* devuelven (nil, nil) si no hay fila.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
