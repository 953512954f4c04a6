package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Empaque-api/internal/application/inventory"
	"github.com/jhoicas/Empaque-api/internal/application/packing"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and packing.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ packing.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos de compras y stock, y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.ChamberStockRepository,
	movRepo repository.ChamberMovementRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewChamberStockRepository(tx), NewChamberMovementRepository(tx), NewPurchaseRepository(tx))
	})
}

// RunPacking inicia una transacción con los repos del registro de un lote de empaque.
func (r *TxRunner) RunPacking(ctx context.Context, fn func(
	stockRepo repository.ChamberStockRepository,
	movRepo repository.ChamberMovementRepository,
	eventRepo repository.PackingEventRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewChamberStockRepository(tx), NewChamberMovementRepository(tx), NewPackingEventRepository(tx))
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
