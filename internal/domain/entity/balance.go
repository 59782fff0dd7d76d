package entity

import "time"

// StockBalance representa la existencia de un producto en una tienda.
// Quantity es el stock vendible; PhysicalQuantity es el conteo físico en
// bodega. Solo un movimiento de tipo ajuste puede hacer que difieran.
// Invariante: ambos campos son enteros >= 0 y hay a lo sumo una fila por par
// (StoreID, ProductID).
type StockBalance struct {
	ID               string
	StoreID          string
	ProductID        string
	Quantity         int64
	PhysicalQuantity int64
	IMEI             *string // serial del equipo, solo para inventario serializado
	CreatedAt        time.Time
}
