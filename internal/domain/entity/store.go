package entity

import "time"

// Store es un punto de venta o bodega que mantiene inventario.
type Store struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}
