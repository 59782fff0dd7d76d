package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un artículo del catálogo. Code es el código que digita el
// usuario en bodega y sirve como llave de resolución para el ledger.
type Product struct {
	ID            string
	Code          string
	Article       string
	Price         decimal.Decimal // precio al cliente
	BusinessPrice decimal.Decimal // precio para negocio
	CategoryID    *string
	CreatedAt     time.Time
}
