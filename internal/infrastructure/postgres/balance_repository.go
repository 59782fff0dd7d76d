package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

const balanceColumns = "id, store_id, product_id, quantity, physical_quantity, imei, created_at"

// BalanceRepo implementación de BalanceRepository sobre PostgreSQL (usable
// con pool o tx). La tabla stock_balances tiene unique (store_id, product_id)
// y checks quantity >= 0 / physical_quantity >= 0 como última línea de
// defensa; el ledger valida antes de escribir.
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

func scanBalance(row pgx.Row) (*entity.StockBalance, error) {
	var b entity.StockBalance
	err := row.Scan(&b.ID, &b.StoreID, &b.ProductID, &b.Quantity, &b.PhysicalQuantity, &b.IMEI, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// GetByID obtiene un balance por id. Devuelve (nil, nil) si no existe.
func (r *BalanceRepo) GetByID(ctx context.Context, id string) (*entity.StockBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM stock_balances WHERE id = $1`
	b, err := scanBalance(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return b, nil
}

// GetByIDForUpdate obtiene un balance por id bloqueando la fila (SELECT FOR UPDATE).
func (r *BalanceRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.StockBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM stock_balances WHERE id = $1 FOR UPDATE`
	b, err := scanBalance(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get balance for update: %w", err)
	}
	return b, nil
}

// GetByProductAndStore obtiene el balance de un producto en una tienda.
func (r *BalanceRepo) GetByProductAndStore(ctx context.Context, productID, storeID string) (*entity.StockBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM stock_balances WHERE product_id = $1 AND store_id = $2`
	b, err := scanBalance(r.q.QueryRow(ctx, query, productID, storeID))
	if err != nil {
		return nil, fmt.Errorf("get balance by product/store: %w", err)
	}
	return b, nil
}

// GetByProductAndStoreForUpdate ídem bloqueando la fila para update.
func (r *BalanceRepo) GetByProductAndStoreForUpdate(ctx context.Context, productID, storeID string) (*entity.StockBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM stock_balances WHERE product_id = $1 AND store_id = $2 FOR UPDATE`
	b, err := scanBalance(r.q.QueryRow(ctx, query, productID, storeID))
	if err != nil {
		return nil, fmt.Errorf("get balance by product/store for update: %w", err)
	}
	return b, nil
}

// Create inserta un balance nuevo (primera llegada del producto a la tienda).
func (r *BalanceRepo) Create(ctx context.Context, b *entity.StockBalance) error {
	query := `
		INSERT INTO stock_balances (id, store_id, product_id, quantity, physical_quantity, imei, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, b.ID, b.StoreID, b.ProductID, b.Quantity, b.PhysicalQuantity, b.IMEI, b.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create balance: %w", err)
	}
	return nil
}

// UpdateQuantities escribe ambas cantidades de una fila ya bloqueada.
func (r *BalanceRepo) UpdateQuantities(ctx context.Context, id string, quantity, physical int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stock_balances SET quantity = $2, physical_quantity = $3 WHERE id = $1`,
		id, quantity, physical,
	)
	if err != nil {
		return fmt.Errorf("update balance quantities: %w", err)
	}
	return nil
}

// SetQuantities override administrativo: cantidades e IMEI en una sentencia.
func (r *BalanceRepo) SetQuantities(ctx context.Context, id string, quantity, physical int64, imei *string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stock_balances SET quantity = $2, physical_quantity = $3, imei = $4 WHERE id = $1`,
		id, quantity, physical, imei,
	)
	if err != nil {
		return fmt.Errorf("set balance quantities: %w", err)
	}
	return nil
}

// List lista balances con filtros de igualdad y paginación.
func (r *BalanceRepo) List(ctx context.Context, filter repository.BalanceFilter, limit, offset int) ([]*entity.StockBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM stock_balances WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.StoreID != "" {
		query += fmt.Sprintf(" AND store_id = $%d", pos)
		args = append(args, filter.StoreID)
		pos++
	}
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.IMEI != "" {
		query += fmt.Sprintf(" AND imei = $%d", pos)
		args = append(args, filter.IMEI)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockBalance
	for rows.Next() {
		var b entity.StockBalance
		if err := rows.Scan(&b.ID, &b.StoreID, &b.ProductID, &b.Quantity, &b.PhysicalQuantity, &b.IMEI, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Delete elimina un balance por id (operación administrativa).
func (r *BalanceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stock_balances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete balance: %w", err)
	}
	return nil
}
