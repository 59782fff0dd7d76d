package postgres

import (
	"context"
	"fmt"

	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL.
// La tabla movement_records es append-only; idempotency_key tiene índice
// único parcial (WHERE idempotency_key IS NOT NULL) para deduplicar
// reintentos del caller.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. Una idempotency_key repetida devuelve
// domain.ErrDuplicate.
func (r *MovementRepo) Create(ctx context.Context, m *entity.MovementRecord) error {
	query := `
		INSERT INTO movement_records (id, balance_id, delta, type, reason, performed_by, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.BalanceID, m.Delta, m.Type, m.Reason, m.PerformedBy, m.IdempotencyKey, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create movement record: %w", err)
	}
	return nil
}

// ListByBalance lista el historial de un balance, más reciente primero.
func (r *MovementRepo) ListByBalance(ctx context.Context, balanceID string, limit, offset int) ([]*entity.MovementRecord, error) {
	query := `
		SELECT id, balance_id, delta, type, reason, performed_by, idempotency_key, created_at
		FROM movement_records WHERE balance_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, balanceID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementRecord
	for rows.Next() {
		var m entity.MovementRecord
		if err := rows.Scan(&m.ID, &m.BalanceID, &m.Delta, &m.Type, &m.Reason, &m.PerformedBy, &m.IdempotencyKey, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
