package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/credimovil/backoffice-api/internal/application/ledger"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Los FOR UPDATE tomados dentro de fn viven hasta el
// Commit, que es lo que serializa a los callers concurrentes sobre la misma
// fila de balance.
func (r *TxRunner) Run(ctx context.Context, fn func(
	balanceRepo repository.BalanceRepository,
	movementRepo repository.MovementRepository,
	transferRepo repository.TransferRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	balanceRepo := NewBalanceRepository(tx)
	movementRepo := NewMovementRepository(tx)
	transferRepo := NewTransferRepository(tx)

	if err := fn(balanceRepo, movementRepo, transferRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
