package repository

import (
	"context"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
)

// PurchaseRepository persiste compras de materia prima.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.RawMaterialPurchase) error
}
