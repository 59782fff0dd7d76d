package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// ErrDependencyFailure: la base de datos u otro colaborador externo falló.
	ErrDependencyFailure = errors.New("dependencia externa no disponible")

	// ErrTimeout: la operación superó el plazo del caller. El resultado es
	// desconocido; solo es seguro reintentar con idempotency_key.
	ErrTimeout = errors.New("tiempo de espera agotado")

	// ErrPartialTransfer: una transferencia quedó a medias y requiere
	// conciliación manual. Con el TxRunner sobre pgx no debería ocurrir; se
	// mantiene para distinguir el caso si el sustrato pierde transacciones.
	ErrPartialTransfer = errors.New("transferencia aplicada parcialmente")
)
