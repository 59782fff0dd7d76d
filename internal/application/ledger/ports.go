package ledger

import (
	"context"

	"github.com/credimovil/backoffice-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la unidad todo-o-nada del ledger: o se
// confirman el balance, el movimiento y la transferencia, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		balanceRepo repository.BalanceRepository,
		movementRepo repository.MovementRepository,
		transferRepo repository.TransferRepository,
	) error) error
}

// AuditSink recibe eventos de auditoría después de una mutación exitosa.
// Es best-effort: la implementación registra el fallo localmente y nunca lo
// propaga al caller. Interfaz local para evitar el import circular con la
// capa de auditoría.
type AuditSink interface {
	Record(ctx context.Context, event, actor, table string, details map[string]any)
}
