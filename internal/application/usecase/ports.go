package usecase

import "context"

// AuditSink recibe eventos de auditoría best-effort (misma interfaz local que
// en el ledger, para evitar el import circular con la capa de auditoría).
type AuditSink interface {
	Record(ctx context.Context, event, actor, table string, details map[string]any)
}

// Dispatcher despacha notificaciones push al dueño de un dispositivo.
// Best-effort: su fallo nunca revierte la mutación que lo originó y debe
// reportarse distinto de un fallo de base de datos.
type Dispatcher interface {
	Notify(ctx context.Context, pushToken, body string, data map[string]any) error
}
