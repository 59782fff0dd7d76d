package dto

import (
	"time"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
)

// AuditLogResponse representación HTTP de una entrada de auditoría.
type AuditLogResponse struct {
	ID        string         `json:"id"`
	Event     string         `json:"event"`
	TableName string         `json:"table_name"`
	UserID    string         `json:"user_id"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewAuditLogResponse mapea la entidad al DTO.
func NewAuditLogResponse(a *entity.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:        a.ID,
		Event:     a.Event,
		TableName: a.TableName,
		UserID:    a.UserID,
		Details:   a.Details,
		CreatedAt: a.CreatedAt,
	}
}
