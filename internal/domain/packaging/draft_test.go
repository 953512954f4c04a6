package packaging_test

import (
	"testing"

	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/packaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() packaging.Roster {
	return packaging.NewRoster([]*entity.Chamber{
		{ID: "c1", Name: "Seca 1", Tag: entity.ChamberTagDry},
		{ID: "c2", Name: "Fría 1", Tag: entity.ChamberTagFrozen},
	})
}

func testProduct() packaging.ProductStage {
	return packaging.ProductStage{
		ProductID:    "p1",
		ProductName:  "Arveja",
		RawMaterial:  "arveja-cruda",
		PackageType:  "pouch",
		PackageSizes: testSizes(),
	}
}

func fullDraft(t *testing.T) *packaging.Draft {
	t.Helper()
	d := packaging.NewDraft(testRoster())
	require.NoError(t, d.SetProduct(testProduct()))
	require.NoError(t, d.SetConsumption(packaging.ConsumptionStage{Sources: []entity.RMChamberSource{
		{ChamberID: "c2", ContainerCount: 4, ContainerSize: dec("25"), ContainerUnit: "KG"},
		{ChamberID: "c1", ContainerCount: 2, ContainerSize: dec("500"), ContainerUnit: "gm"},
	}}))
	require.NoError(t, d.SetPlan(packaging.PlanStage{Inputs: map[string]packaging.PackageInput{
		"500gm": {BagCount: 10, PacketsPerBag: 20, Chambers: map[string]int{"c1": 6, "c2": 4}},
	}}))
	return d
}

func TestDraft_ReviewCompleto(t *testing.T) {
	snap, err := fullDraft(t).Snapshot()
	require.NoError(t, err)

	review := snap.Review()
	require.Len(t, review.Plan, 1)
	assert.True(t, review.Summary.Valid)
	assert.True(t, review.TotalKgUsed.Equal(dec("101")), "4x25kg + 2x500gm = 101 kg, got %s", review.TotalKgUsed)
	assert.Equal(t, "kg", snap.Consumption.Sources[0].ContainerUnit, "unidad normalizada")
}

func TestDraft_SnapshotIncompleto(t *testing.T) {
	d := packaging.NewDraft(testRoster())
	_, err := d.Snapshot()
	assert.ErrorIs(t, err, domain.ErrDraftIncomplete)

	require.NoError(t, d.SetProduct(testProduct()))
	_, err = d.Snapshot()
	assert.ErrorIs(t, err, domain.ErrDraftIncomplete)
}

func TestDraft_PlanRequiereProducto(t *testing.T) {
	d := packaging.NewDraft(testRoster())
	err := d.SetPlan(packaging.PlanStage{})
	assert.ErrorIs(t, err, domain.ErrDraftIncomplete)
}

func TestDraft_RechazaUnidadDesconocida(t *testing.T) {
	d := packaging.NewDraft(testRoster())
	err := d.SetConsumption(packaging.ConsumptionStage{Sources: []entity.RMChamberSource{
		{ChamberID: "c1", ContainerCount: 1, ContainerSize: dec("5"), ContainerUnit: "lb"},
	}})
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)

	p := testProduct()
	p.PackageSizes = []entity.PackageSize{{Size: dec("1"), Unit: "oz"}}
	assert.ErrorIs(t, d.SetProduct(p), domain.ErrUnknownUnit)
}

func TestDraft_RechazaCamaraDesconocida(t *testing.T) {
	d := packaging.NewDraft(testRoster())
	err := d.SetConsumption(packaging.ConsumptionStage{Sources: []entity.RMChamberSource{
		{ChamberID: "c9", ContainerCount: 1, ContainerSize: dec("5"), ContainerUnit: "kg"},
	}})
	assert.ErrorIs(t, err, domain.ErrChamberNotFound)

	require.NoError(t, d.SetProduct(testProduct()))
	err = d.SetPlan(packaging.PlanStage{Inputs: map[string]packaging.PackageInput{
		"500gm": {BagCount: 1, PacketsPerBag: 1, Chambers: map[string]int{"c9": 1}},
	}})
	assert.ErrorIs(t, err, domain.ErrChamberNotFound)
}

func TestDraft_RechazaSKUAjenoYNegativos(t *testing.T) {
	d := packaging.NewDraft(testRoster())
	require.NoError(t, d.SetProduct(testProduct()))

	err := d.SetPlan(packaging.PlanStage{Inputs: map[string]packaging.PackageInput{"2kg": {BagCount: 1, PacketsPerBag: 1}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = d.SetPlan(packaging.PlanStage{Inputs: map[string]packaging.PackageInput{"1kg": {BagCount: -1}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDraft_CambiarProductoDescartaPlan(t *testing.T) {
	d := fullDraft(t)
	require.NoError(t, d.SetProduct(testProduct()))
	_, err := d.Snapshot()
	assert.ErrorIs(t, err, domain.ErrDraftIncomplete)
}

func TestDraft_SnapshotEsCopia(t *testing.T) {
	d := fullDraft(t)
	snap, err := d.Snapshot()
	require.NoError(t, err)

	snap.Plan.Inputs["500gm"].Chambers["c1"] = 99
	snap.Product.PackageSizes[0].Count = 99

	again, err := d.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 6, again.Plan.Inputs["500gm"].Chambers["c1"])
	assert.Equal(t, 12, again.Product.PackageSizes[0].Count)
}

func TestDraft_RechazaPresentacionRepetida(t *testing.T) {
	d := packaging.NewDraft(testRoster())
	p := testProduct()
	p.PackageSizes = []entity.PackageSize{
		{Size: dec("500"), Unit: "gm"},
		{Size: dec("1"), Unit: "kg"},
		{Size: dec("500.0"), Unit: "GM"},
	}
	err := d.SetProduct(p)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "500gm")

	_, err = d.Snapshot()
	assert.ErrorIs(t, err, domain.ErrDraftIncomplete, "el producto rechazado no queda fijado")
}
