package entity

import "time"

// TransferRecord empareja el débito en la tienda origen con el crédito en la
// tienda destino para el mismo producto. Se escribe solo después de que ambas
// mutaciones de balance hayan quedado confirmadas en la misma transacción.
type TransferRecord struct {
	ID                 string
	ProductID          string
	OriginStoreID      string
	DestinationStoreID string
	Quantity           int64
	PerformedBy        string
	IdempotencyKey     *string
	CreatedAt          time.Time
}
