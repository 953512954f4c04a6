package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

func chamber(id, name string) *entity.Chamber {
	return &entity.Chamber{ID: id, Name: name, Capacity: decimal.NewFromInt(1000), Tag: entity.ChamberTagDry}
}

func TestChamberRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Chambers()

	require.NoError(t, repo.Create(ctx, chamber("c2", "Seca B")))
	require.NoError(t, repo.Create(ctx, chamber("c1", "Seca A")))
	assert.ErrorIs(t, repo.Create(ctx, chamber("c3", "Seca A")), domain.ErrDuplicate)

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Seca A", got.Name)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c2", list[0].ID)

	assert.ErrorIs(t, repo.Update(ctx, chamber("nope", "X")), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "nope"), domain.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, "c2"))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestChamberRepo_DeleteConStock(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Chambers().Create(ctx, chamber("c1", "Seca A")))
	require.NoError(t, s.Stock().Upsert(ctx, &entity.ChamberStock{ChamberID: "c1", Item: "arveja", Quantity: decimal.NewFromInt(5)}))

	assert.ErrorIs(t, s.Chambers().Delete(ctx, "c1"), domain.ErrConflict)
}

func TestStockRepo_CeroSiNoExiste(t *testing.T) {
	stock, err := NewStore().Stock().Get(context.Background(), "c1", "arveja")
	require.NoError(t, err)
	assert.True(t, stock.Quantity.IsZero())
	assert.Equal(t, "arveja", stock.Item)
}

func TestTxRunner_RollbackAlFallar(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	tx := NewTxRunner(s)
	boom := errors.New("boom")

	err := tx.Run(ctx, func(stockRepo repository.ChamberStockRepository, movRepo repository.ChamberMovementRepository, purchaseRepo repository.PurchaseRepository) error {
		require.NoError(t, stockRepo.Upsert(ctx, &entity.ChamberStock{ChamberID: "c1", Item: "arveja", Quantity: decimal.NewFromInt(10)}))
		require.NoError(t, movRepo.Create(ctx, &entity.ChamberMovement{ChamberID: "c1", Item: "arveja", Type: entity.MovementTypeRMIn}))
		require.NoError(t, purchaseRepo.Create(ctx, &entity.RawMaterialPurchase{ID: "p1"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	stock, err := s.Stock().ListByChamber(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, stock)
	movs, err := s.Movements().ListByChamber(ctx, "c1", nil, nil, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, movs)
	assert.Zero(t, s.PurchaseCount())
}

func TestTxRunner_Commit(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	err := NewTxRunner(s).RunPacking(ctx, func(stockRepo repository.ChamberStockRepository, movRepo repository.ChamberMovementRepository, eventRepo repository.PackingEventRepository) error {
		if err := stockRepo.Upsert(ctx, &entity.ChamberStock{ChamberID: "c1", Item: "sku:p1:500gm", Quantity: decimal.NewFromInt(6)}); err != nil {
			return err
		}
		return eventRepo.Create(ctx, &entity.PackingEvent{ID: "e1", BatchID: "b1", ProductID: "p1"})
	})
	require.NoError(t, err)

	stock, err := s.Stock().Get(ctx, "c1", "sku:p1:500gm")
	require.NoError(t, err)
	assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(6)))

	events, err := s.PackingEvents().ListByBatch(ctx, "b1")
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestMovementRepo_FiltraPorFecha(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Movements()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entity.ChamberMovement{
			ChamberID: "c1",
			Item:      "arveja",
			Type:      entity.MovementTypeRMIn,
			Quantity:  decimal.NewFromInt(int64(i + 1)),
			CreatedAt: base.Add(time.Duration(i) * 24 * time.Hour),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.ChamberMovement{ChamberID: "c2", CreatedAt: base}))

	from := base.Add(12 * time.Hour)
	list, err := repo.ListByChamber(ctx, "c1", &from, nil, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Quantity.Equal(decimal.NewFromInt(3)), "más reciente primero")
	assert.NotEmpty(t, list[0].ID)
}

func TestPackingEventRepo_ListPorProducto(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().PackingEvents()
	require.NoError(t, repo.Create(ctx, &entity.PackingEvent{ID: "e1", ProductID: "p1", Storage: []entity.StorageAllocation{{ChamberID: "c1", BagsStored: 2}}}))
	require.NoError(t, repo.Create(ctx, &entity.PackingEvent{ID: "e2", ProductID: "p2"}))
	require.NoError(t, repo.Create(ctx, &entity.PackingEvent{ID: "e3", ProductID: "p1"}))
	assert.ErrorIs(t, repo.Create(ctx, &entity.PackingEvent{ID: "e1"}), domain.ErrDuplicate)

	list, err := repo.List(ctx, "p1", 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "e3", list[0].ID)

	got, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	got.Storage[0].BagsStored = 99
	again, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Storage[0].BagsStored, "GetByID devuelve copias")
}
