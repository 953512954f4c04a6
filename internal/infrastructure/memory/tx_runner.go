package memory

import (
	"context"

	"github.com/jhoicas/Empaque-api/internal/application/inventory"
	"github.com/jhoicas/Empaque-api/internal/application/packing"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)
var _ packing.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones con el mutex del store y restaura el estado
// previo si fn retorna error.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.ChamberStockRepository,
	movRepo repository.ChamberMovementRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	return r.inTx(ctx, func() error {
		return fn(
			&ChamberStockRepo{s: r.s, locked: true},
			&ChamberMovementRepo{s: r.s, locked: true},
			&PurchaseRepo{s: r.s, locked: true},
		)
	})
}

func (r *TxRunner) RunPacking(ctx context.Context, fn func(
	stockRepo repository.ChamberStockRepository,
	movRepo repository.ChamberMovementRepository,
	eventRepo repository.PackingEventRepository,
) error) error {
	return r.inTx(ctx, func() error {
		return fn(
			&ChamberStockRepo{s: r.s, locked: true},
			&ChamberMovementRepo{s: r.s, locked: true},
			&PackingEventRepo{s: r.s, locked: true},
		)
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	before := r.s.st.clone()
	if err := fn(); err != nil {
		r.s.st = before
		return err
	}
	return nil
}
