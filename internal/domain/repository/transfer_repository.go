package repository

import (
	"context"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
)

// TransferRepository define el puerto de persistencia para transferencias
// entre tiendas (append-only).
type TransferRepository interface {
	// Create persiste la transferencia. Si idempotency_key ya existe devuelve
	// domain.ErrDuplicate.
	Create(ctx context.Context, t *entity.TransferRecord) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.TransferRecord, error)
}
