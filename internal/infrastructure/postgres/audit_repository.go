package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación de AuditRepository sobre PostgreSQL. Details se
// guarda como JSONB.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create persiste una entrada de auditoría.
func (r *AuditRepo) Create(ctx context.Context, a *entity.AuditLog) error {
	details, err := json.Marshal(a.Details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}
	query := `
		INSERT INTO audit_logs (id, event, table_name, user_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.q.Exec(ctx, query, a.ID, a.Event, a.TableName, a.UserID, details, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List lista entradas de auditoría, más reciente primero.
func (r *AuditRepo) List(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, event, table_name, user_id, details, created_at
		FROM audit_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var a entity.AuditLog
		var details []byte
		if err := rows.Scan(&a.ID, &a.Event, &a.TableName, &a.UserID, &details, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &a.Details); err != nil {
				return nil, fmt.Errorf("unmarshal audit details: %w", err)
			}
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
