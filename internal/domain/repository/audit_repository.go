package repository

import (
	"context"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
)

// AuditRepository define el puerto de persistencia para el log de auditoría.
type AuditRepository interface {
	Create(ctx context.Context, a *entity.AuditLog) error
	List(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error)
}
