package postgres

import (
	"context"
	"fmt"

	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL
// (append-only, mismo índice único parcial sobre idempotency_key que los
// movimientos).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste la transferencia. Una idempotency_key repetida devuelve
// domain.ErrDuplicate.
func (r *TransferRepo) Create(ctx context.Context, t *entity.TransferRecord) error {
	query := `
		INSERT INTO transfer_records (id, product_id, origin_store_id, destination_store_id, quantity, performed_by, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.ProductID, t.OriginStoreID, t.DestinationStoreID, t.Quantity, t.PerformedBy, t.IdempotencyKey, t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create transfer record: %w", err)
	}
	return nil
}

// ListByProduct lista transferencias de un producto, más reciente primero.
func (r *TransferRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.TransferRecord, error) {
	query := `
		SELECT id, product_id, origin_store_id, destination_store_id, quantity, performed_by, idempotency_key, created_at
		FROM transfer_records WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransferRecord
	for rows.Next() {
		var t entity.TransferRecord
		if err := rows.Scan(&t.ID, &t.ProductID, &t.OriginStoreID, &t.DestinationStoreID, &t.Quantity, &t.PerformedBy, &t.IdempotencyKey, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
