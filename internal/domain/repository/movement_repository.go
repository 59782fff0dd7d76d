package repository

import (
	"context"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el historial de
// movimientos (append-only; el ledger nunca muta un registro existente).
type MovementRepository interface {
	// Create persiste el movimiento. Si idempotency_key ya existe devuelve
	// domain.ErrDuplicate (índice único en la tabla).
	Create(ctx context.Context, m *entity.MovementRecord) error
	ListByBalance(ctx context.Context, balanceID string, limit, offset int) ([]*entity.MovementRecord, error)
}
