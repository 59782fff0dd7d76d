package entity

import "time"

// AuditLog registra quién hizo qué sobre qué tabla. Se escribe best-effort
// después de cada mutación exitosa; nunca bloquea la operación que reporta.
type AuditLog struct {
	ID        string
	Event     string // CREATE, UPDATE, DELETE, MOVEMENT, TRANSFER...
	TableName string
	UserID    string
	Details   map[string]any
	CreatedAt time.Time
}
