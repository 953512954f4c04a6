package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empaque-api/internal/application/dto"
	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/packaging"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

// PurchaseUseCase registra compras de materia prima de forma transaccional: bloquea la fila
// de stock de la cámara (SELECT FOR UPDATE), suma los kg y guarda el movimiento RM_IN.
type PurchaseUseCase struct {
	txRunner    TxRunner
	chamberRepo repository.ChamberRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(txRunner TxRunner, chamberRepo repository.ChamberRepository) *PurchaseUseCase {
	return &PurchaseUseCase{txRunner: txRunner, chamberRepo: chamberRepo}
}

// RegisterPurchase valida la compra, normaliza el tamaño del contenedor a kg y la aplica
// al stock de la cámara. Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace).
func (uc *PurchaseUseCase) RegisterPurchase(ctx context.Context, in dto.RegisterPurchaseRequest) (*dto.PurchaseResponse, error) {
	if strings.TrimSpace(in.Vendor) == "" || strings.TrimSpace(in.Item) == "" || in.ChamberID == "" {
		return nil, fmt.Errorf("%w: vendor, item y chamber_id son requeridos", domain.ErrInvalidInput)
	}
	unit, err := packaging.ParseUnit(in.ContainerUnit)
	if err != nil {
		return nil, err
	}
	if in.ContainerCount <= 0 || !in.ContainerSize.IsPositive() {
		return nil, fmt.Errorf("%w: container_count y container_size deben ser positivos", domain.ErrInvalidInput)
	}
	chamber, err := uc.chamberRepo.GetByID(ctx, in.ChamberID)
	if err != nil {
		return nil, err
	}
	if chamber == nil {
		return nil, domain.ErrChamberNotFound
	}

	now := time.Now()
	purchase := &entity.RawMaterialPurchase{
		ID:             uuid.New().String(),
		Vendor:         strings.TrimSpace(in.Vendor),
		Item:           strings.TrimSpace(in.Item),
		ChamberID:      chamber.ID,
		ContainerCount: in.ContainerCount,
		ContainerSize:  in.ContainerSize,
		ContainerUnit:  string(unit),
		Kilograms:      packaging.ContainerKilograms(in.ContainerCount, in.ContainerSize, string(unit)),
		CreatedAt:      now,
	}

	var stockAfter *entity.ChamberStock
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.ChamberStockRepository,
		movRepo repository.ChamberMovementRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		stock, err := stockRepo.GetForUpdate(ctx, purchase.ChamberID, purchase.Item)
		if err != nil {
			return err
		}
		stock.Quantity = stock.Quantity.Add(purchase.Kilograms)
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(ctx, stock); err != nil {
			return err
		}
		if err := purchaseRepo.Create(ctx, purchase); err != nil {
			return err
		}
		stockAfter = stock
		return movRepo.Create(ctx, &entity.ChamberMovement{
			TransactionID: purchase.ID,
			ChamberID:     purchase.ChamberID,
			Item:          purchase.Item,
			Type:          entity.MovementTypeRMIn,
			Quantity:      purchase.Kilograms,
			Reference:     "compra " + purchase.Vendor,
			CreatedAt:     now,
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.PurchaseResponse{
		ID:        purchase.ID,
		ChamberID: purchase.ChamberID,
		Item:      purchase.Item,
		Kilograms: purchase.Kilograms,
		StockKg:   stockAfter.Quantity,
		CreatedAt: purchase.CreatedAt,
	}, nil
}
