package inventory

import (
	"context"

	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad del stock de cámaras.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.ChamberStockRepository,
		movRepo repository.ChamberMovementRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
