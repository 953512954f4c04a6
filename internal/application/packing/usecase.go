package packing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empaque-api/internal/application/dto"
	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/packaging"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
	"github.com/jhoicas/Empaque-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// UseCase arma borradores de empaque a partir de la petición, los revisa y registra
// los lotes válidos.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	chamberRepo repository.ChamberRepository
	eventRepo   repository.PackingEventRepository
	log         *logger.Logger
	now         func() time.Time
}

// NewUseCase construye el caso de uso de empaque.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	chamberRepo repository.ChamberRepository,
	eventRepo repository.PackingEventRepository,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		chamberRepo: chamberRepo,
		eventRepo:   eventRepo,
		log:         log.Named("packing"),
		now:         time.Now,
	}
}

// PackedItem clave de stock en cámara para las bolsas de un SKU de un producto.
func PackedItem(productID, skuID string) string {
	return "sku:" + productID + ":" + skuID
}

// review carga producto y roster, arma el borrador etapa por etapa y devuelve su revisión.
func (uc *UseCase) review(ctx context.Context, in dto.PackingDraftRequest) (*entity.Product, packaging.Snapshot, packaging.Review, error) {
	var snap packaging.Snapshot
	if in.ProductID == "" {
		return nil, snap, packaging.Review{}, fmt.Errorf("%w: product_id es requerido", domain.ErrInvalidInput)
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, snap, packaging.Review{}, err
	}
	if product == nil {
		return nil, snap, packaging.Review{}, domain.ErrNotFound
	}
	chambers, err := uc.chamberRepo.ListAll(ctx)
	if err != nil {
		return nil, snap, packaging.Review{}, err
	}

	draft := packaging.NewDraft(packaging.NewRoster(chambers))
	if err := draft.SetProduct(packaging.ProductStage{
		ProductID:    product.ID,
		ProductName:  product.Name,
		RawMaterial:  product.RawMaterial,
		PackageType:  product.PackageType,
		PackageSizes: product.PackageSizes,
	}); err != nil {
		return nil, snap, packaging.Review{}, err
	}
	sources := make([]entity.RMChamberSource, 0, len(in.RMConsumption))
	for _, s := range in.RMConsumption {
		sources = append(sources, entity.RMChamberSource{
			ChamberID:      s.ChamberID,
			ContainerCount: s.ContainerCount,
			ContainerSize:  s.ContainerSize,
			ContainerUnit:  s.ContainerUnit,
		})
	}
	if err := draft.SetConsumption(packaging.ConsumptionStage{Sources: sources}); err != nil {
		return nil, snap, packaging.Review{}, err
	}
	if err := draft.SetPlan(packaging.PlanStage{Inputs: in.Packages}); err != nil {
		return nil, snap, packaging.Review{}, err
	}
	snap, err = draft.Snapshot()
	if err != nil {
		return nil, snap, packaging.Review{}, err
	}
	return product, snap, snap.Review(), nil
}

// Preview construye y valida el plan sin persistir nada.
func (uc *UseCase) Preview(ctx context.Context, in dto.PackingDraftRequest) (*dto.PackingPreviewResponse, error) {
	product, snap, rev, err := uc.review(ctx, in)
	if err != nil {
		return nil, err
	}
	return &dto.PackingPreviewResponse{
		ProductID:   product.ID,
		ProductName: product.Name,
		Plan:        rev.Plan,
		Validation:  rev.Summary,
		Consumption: snap.Consumption.Sources,
		TotalKgUsed: rev.TotalKgUsed,
	}, nil
}

// Submit revisa el borrador y, si todos los SKUs concilian, en una transacción descuenta la
// materia prima de cada cámara fuente (RM_OUT), guarda un evento por SKU y suma las bolsas
// a las cámaras de destino (PACK_IN).
//
// Retorna:
//   - domain.ErrDraftIncomplete  si ningún SKU tiene bolsas.
//   - *PlanRejectedError         si algún SKU no concilia (errors.Is con domain.ErrPlanInvalid).
//   - domain.ErrInsufficientStock si una cámara no tiene los kg a consumir.
func (uc *UseCase) Submit(ctx context.Context, in dto.PackingDraftRequest) (*dto.PackingSubmitResponse, error) {
	product, snap, rev, err := uc.review(ctx, in)
	if err != nil {
		return nil, err
	}
	if len(rev.Plan) == 0 {
		return nil, fmt.Errorf("%w: ningún SKU con bolsas producidas", domain.ErrDraftIncomplete)
	}
	if !rev.Summary.Valid {
		uc.log.Warn().
			Str("product_id", product.ID).
			Strs("errors", rev.Summary.Errors()).
			Msg("plan de empaque rechazado")
		return nil, &PlanRejectedError{Summary: rev.Summary}
	}

	now := uc.now()
	batchID := uuid.New().String()
	events := make([]*entity.PackingEvent, 0, len(rev.Plan))

	err = uc.txRunner.RunPacking(ctx, func(
		stockRepo repository.ChamberStockRepository,
		movRepo repository.ChamberMovementRepository,
		eventRepo repository.PackingEventRepository,
	) error {
		for _, src := range lockOrder(snap.Consumption.Sources) {
			stock, err := stockRepo.GetForUpdate(ctx, src.ChamberID, product.RawMaterial)
			if err != nil {
				return err
			}
			if stock.Quantity.LessThan(src.KgUsed) {
				return fmt.Errorf("%w: cámara %s tiene %s kg de %s, se requieren %s",
					domain.ErrInsufficientStock, src.ChamberID, stock.Quantity, product.RawMaterial, src.KgUsed)
			}
			stock.Quantity = stock.Quantity.Sub(src.KgUsed)
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(ctx, stock); err != nil {
				return err
			}
			if err := movRepo.Create(ctx, &entity.ChamberMovement{
				TransactionID: batchID,
				ChamberID:     src.ChamberID,
				Item:          product.RawMaterial,
				Type:          entity.MovementTypeRMOut,
				Quantity:      src.KgUsed.Neg(),
				Reference:     "empaque " + product.Name,
				CreatedAt:     now,
			}); err != nil {
				return err
			}
		}

		for _, item := range rev.Plan {
			ev := &entity.PackingEvent{
				ID:               uuid.New().String(),
				BatchID:          batchID,
				ProductID:        product.ID,
				ProductName:      product.Name,
				SKUID:            item.SKUID,
				SKULabel:         item.SKULabel,
				PacketDescriptor: item.PacketDescriptor(),
				BagsProduced:     item.BagsProduced,
				PacketsPerBag:    item.PacketsPerBag,
				TotalPackets:     item.TotalPackets,
				Storage:          item.Storage,
				RMConsumption:    snap.Consumption.Sources,
				CreatedAt:        now,
			}
			if err := eventRepo.Create(ctx, ev); err != nil {
				return err
			}
			for _, alloc := range item.Storage {
				if err := storeBags(ctx, stockRepo, movRepo, alloc, PackedItem(product.ID, item.SKUID), batchID, ev.PacketDescriptor, now); err != nil {
					return err
				}
			}
			events = append(events, ev)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("batch_id", batchID).
		Str("product_id", product.ID).
		Int("skus", len(events)).
		Int("bags", rev.Summary.TotalBags).
		Int("packets", rev.Summary.TotalPackets).
		Str("kg_used", rev.TotalKgUsed.String()).
		Msg("lote de empaque registrado")

	out := &dto.PackingSubmitResponse{BatchID: batchID, Events: make([]dto.PackingEventResponse, 0, len(events))}
	for _, ev := range events {
		out.Events = append(out.Events, toEventResponse(ev))
	}
	return out, nil
}

// lockOrder ordena las fuentes por cámara para que dos lotes que consumen de las mismas
// cámaras bloqueen las filas de stock en el mismo orden.
func lockOrder(sources []entity.RMChamberSource) []entity.RMChamberSource {
	out := append([]entity.RMChamberSource(nil), sources...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ChamberID < out[j].ChamberID })
	return out
}

func storeBags(
	ctx context.Context,
	stockRepo repository.ChamberStockRepository,
	movRepo repository.ChamberMovementRepository,
	alloc entity.StorageAllocation,
	item, batchID, reference string,
	now time.Time,
) error {
	stock, err := stockRepo.GetForUpdate(ctx, alloc.ChamberID, item)
	if err != nil {
		return err
	}
	bags := decimal.NewFromInt(int64(alloc.BagsStored))
	stock.Quantity = stock.Quantity.Add(bags)
	stock.UpdatedAt = now
	if err := stockRepo.Upsert(ctx, stock); err != nil {
		return err
	}
	return movRepo.Create(ctx, &entity.ChamberMovement{
		TransactionID: batchID,
		ChamberID:     alloc.ChamberID,
		Item:          item,
		Type:          entity.MovementTypePackIn,
		Quantity:      bags,
		Reference:     reference,
		CreatedAt:     now,
	})
}

// GetEvent obtiene un evento por ID.
func (uc *UseCase) GetEvent(ctx context.Context, id string) (*dto.PackingEventResponse, error) {
	ev, err := uc.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, domain.ErrNotFound
	}
	out := toEventResponse(ev)
	return &out, nil
}

// ListEvents lista eventos (opcionalmente de un producto) con paginación.
func (uc *UseCase) ListEvents(ctx context.Context, productID string, page dto.PageRequest) (*dto.PackingEventListResponse, error) {
	page.Normalize()
	list, err := uc.eventRepo.List(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PackingEventResponse, 0, len(list))
	for _, ev := range list {
		items = append(items, toEventResponse(ev))
	}
	return &dto.PackingEventListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toEventResponse(ev *entity.PackingEvent) dto.PackingEventResponse {
	return dto.PackingEventResponse{
		ID:               ev.ID,
		BatchID:          ev.BatchID,
		ProductID:        ev.ProductID,
		ProductName:      ev.ProductName,
		SKUID:            ev.SKUID,
		SKULabel:         ev.SKULabel,
		PacketDescriptor: ev.PacketDescriptor,
		BagsProduced:     ev.BagsProduced,
		PacketsPerBag:    ev.PacketsPerBag,
		TotalPackets:     ev.TotalPackets,
		Storage:          ev.Storage,
		RMConsumption:    ev.RMConsumption,
		CreatedAt:        ev.CreatedAt,
	}
}
