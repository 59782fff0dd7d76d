package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrance   = "entrance"   // entrada: suma stock y conteo físico
	MovementTypeExit       = "exit"       // salida: resta stock y conteo físico
	MovementTypeAdjustment = "adjustment" // ajuste: corrige solo el conteo físico
)

// ValidMovementType indica si el tipo pertenece a la taxonomía del ledger.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeEntrance, MovementTypeExit, MovementTypeAdjustment:
		return true
	}
	return false
}

// MovementRecord es la entrada inmutable (append-only) que documenta un cambio
// aplicado a un StockBalance. Delta lleva el signo realmente aplicado.
type MovementRecord struct {
	ID             string
	BalanceID      string
	Delta          int64
	Type           string
	Reason         string
	PerformedBy    string
	IdempotencyKey *string // opcional, deduplica reintentos del caller
	CreatedAt      time.Time
}
