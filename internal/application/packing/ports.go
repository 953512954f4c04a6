package packing

import (
	"context"

	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

// TxRunner ejecuta el registro de un lote de empaque en una sola transacción:
// descuento de materia prima, eventos y stock de bolsas.
type TxRunner interface {
	RunPacking(ctx context.Context, fn func(
		stockRepo repository.ChamberStockRepository,
		movRepo repository.ChamberMovementRepository,
		eventRepo repository.PackingEventRepository,
	) error) error
}
