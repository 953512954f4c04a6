package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Empaque-api/internal/application/dto"
	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/packaging"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// StockUseCase consultas de stock por cámara y estimación de paquetes a partir de la tara.
type StockUseCase struct {
	chamberRepo repository.ChamberRepository
	stockRepo   repository.ChamberStockRepository
	movRepo     repository.ChamberMovementRepository
	tares       packaging.TareTable
}

// NewStockUseCase construye el caso de uso con la tabla de taras activa.
func NewStockUseCase(
	chamberRepo repository.ChamberRepository,
	stockRepo repository.ChamberStockRepository,
	movRepo repository.ChamberMovementRepository,
	tares packaging.TareTable,
) *StockUseCase {
	return &StockUseCase{chamberRepo: chamberRepo, stockRepo: stockRepo, movRepo: movRepo, tares: tares}
}

// ChamberStock devuelve el stock de todos los ítems de una cámara, ordenado por ítem.
func (uc *StockUseCase) ChamberStock(ctx context.Context, chamberID string) (*dto.ChamberStockResponse, error) {
	if err := uc.ensureChamber(ctx, chamberID); err != nil {
		return nil, err
	}
	rows, err := uc.stockRepo.ListByChamber(ctx, chamberID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ChamberStockDTO, 0, len(rows))
	for _, s := range rows {
		items = append(items, dto.ChamberStockDTO{Item: s.Item, Quantity: s.Quantity, UpdatedAt: s.UpdatedAt})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Item < items[j].Item })
	return &dto.ChamberStockResponse{ChamberID: chamberID, Items: items}, nil
}

// MaxPackets estima cuántos paquetes caben en los kg guardados de item:
// floor(gramos / tara del paquete).
func (uc *StockUseCase) MaxPackets(ctx context.Context, chamberID, item, pkgType string, size decimal.Decimal, unit string) (*dto.MaxPacketsResponse, error) {
	if item == "" {
		return nil, fmt.Errorf("%w: item es requerido", domain.ErrInvalidInput)
	}
	pt, err := packaging.ParsePackageType(pkgType)
	if err != nil {
		return nil, err
	}
	u, err := packaging.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	if !size.IsPositive() {
		return nil, fmt.Errorf("%w: size debe ser positivo", domain.ErrInvalidInput)
	}
	if err := uc.ensureChamber(ctx, chamberID); err != nil {
		return nil, err
	}
	stock, err := uc.stockRepo.Get(ctx, chamberID, item)
	if err != nil {
		return nil, err
	}
	return &dto.MaxPacketsResponse{
		ChamberID:   chamberID,
		Item:        item,
		StoredKg:    stock.Quantity,
		PackageType: string(pt),
		Size:        size,
		Unit:        string(u),
		TareGrams:   uc.tares.Estimate(string(pt), size, string(u)),
		MaxPackets:  uc.tares.MaxPackets(stock.Quantity, string(pt), size, string(u)),
	}, nil
}

// Movements lista los movimientos de una cámara en [from, to] (ambos opcionales).
func (uc *StockUseCase) Movements(ctx context.Context, chamberID string, from, to *time.Time, page dto.PageRequest) (*dto.ChamberMovementListResponse, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: from posterior a to", domain.ErrInvalidInput)
	}
	if err := uc.ensureChamber(ctx, chamberID); err != nil {
		return nil, err
	}
	page.Normalize()
	list, err := uc.movRepo.ListByChamber(ctx, chamberID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ChamberMovementDTO, 0, len(list))
	for _, m := range list {
		items = append(items, dto.ChamberMovementDTO{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			Item:          m.Item,
			Type:          m.Type,
			Quantity:      m.Quantity,
			Reference:     m.Reference,
			CreatedAt:     m.CreatedAt,
		})
	}
	return &dto.ChamberMovementListResponse{
		ChamberID: chamberID,
		Items:     items,
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *StockUseCase) ensureChamber(ctx context.Context, chamberID string) error {
	chamber, err := uc.chamberRepo.GetByID(ctx, chamberID)
	if err != nil {
		return err
	}
	if chamber == nil {
		return domain.ErrChamberNotFound
	}
	return nil
}
