package repository

import (
	"context"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
)

// BalanceFilter filtros de igualdad para listar balances.
type BalanceFilter struct {
	StoreID   string
	ProductID string
	IMEI      string
}

// BalanceRepository define el puerto de persistencia para StockBalance.
// Los métodos *ForUpdate bloquean la fila (SELECT FOR UPDATE) y deben usarse
// dentro de una transacción; son la protección contra lost updates del
// read-modify-write del ledger. Los Get* devuelven (nil, nil) si no hay fila.
type BalanceRepository interface {
	GetByID(ctx context.Context, id string) (*entity.StockBalance, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entity.StockBalance, error)
	GetByProductAndStore(ctx context.Context, productID, storeID string) (*entity.StockBalance, error)
	GetByProductAndStoreForUpdate(ctx context.Context, productID, storeID string) (*entity.StockBalance, error)
	Create(ctx context.Context, b *entity.StockBalance) error
	// UpdateQuantities escribe quantity y physical_quantity de una fila ya bloqueada.
	UpdateQuantities(ctx context.Context, id string, quantity, physical int64) error
	// SetQuantities escribe ambas cantidades y el IMEI opcional (override administrativo).
	SetQuantities(ctx context.Context, id string, quantity, physical int64, imei *string) error
	List(ctx context.Context, filter BalanceFilter, limit, offset int) ([]*entity.StockBalance, error)
	Delete(ctx context.Context, id string) error
}
