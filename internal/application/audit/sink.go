package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
	"github.com/credimovil/backoffice-api/pkg/logger"
)

// Sink escribe entradas de auditoría best-effort: se invoca después de una
// mutación exitosa y su fallo nunca revierte ni falla la operación que
// reporta. El error se registra en el log local y se descarta.
type Sink struct {
	repo repository.AuditRepository
	log  *logger.Logger
}

// NewSink construye el sink de auditoría.
func NewSink(repo repository.AuditRepository, log *logger.Logger) *Sink {
	return &Sink{repo: repo, log: log}
}

// Record persiste la entrada de auditoría. Fire-and-forget.
func (s *Sink) Record(ctx context.Context, event, actor, table string, details map[string]any) {
	entry := &entity.AuditLog{
		ID:        uuid.New().String(),
		Event:     event,
		TableName: table,
		UserID:    actor,
		Details:   details,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Warn().Err(err).
			Str("event", event).
			Str("table", table).
			Msg("no se pudo registrar auditoría")
	}
}

// List devuelve entradas de auditoría paginadas (solo lectura, ruta admin).
func (s *Sink) List(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error) {
	return s.repo.List(ctx, limit, offset)
}
