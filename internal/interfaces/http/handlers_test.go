package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empaque-api/internal/application/dto"
	"github.com/jhoicas/Empaque-api/internal/application/inventory"
	"github.com/jhoicas/Empaque-api/internal/application/packing"
	"github.com/jhoicas/Empaque-api/internal/application/report"
	"github.com/jhoicas/Empaque-api/internal/application/usecase"
	"github.com/jhoicas/Empaque-api/internal/domain/packaging"
	"github.com/jhoicas/Empaque-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Empaque-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakePDF devuelve un PDF mínimo y guarda el último reporte recibido.
type fakePDF struct {
	last *report.PackingReport
}

func (f *fakePDF) GeneratePackingReport(_ context.Context, r report.PackingReport) ([]byte, error) {
	f.last = &r
	return []byte("%PDF-1.4 fake"), nil
}

type testEnv struct {
	app   *fiber.App
	store *memory.Store
	pdf   *fakePDF
}

// newTestEnv arma la API completa sobre el store en memoria.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	pdf := &fakePDF{}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ChamberUC:  usecase.NewChamberUseCase(store.Chambers()),
		ProductUC:  usecase.NewProductUseCase(store.Products()),
		PurchaseUC: inventory.NewPurchaseUseCase(tx, store.Chambers()),
		StockUC:    inventory.NewStockUseCase(store.Chambers(), store.Stock(), store.Movements(), packaging.DefaultTareTable()),
		PackingUC:  packing.NewUseCase(tx, store.Products(), store.Chambers(), store.PackingEvents(), nil),
		ReportUC:   report.NewPDFUseCase(store.PackingEvents(), store.Chambers(), pdf),
	})
	return &testEnv{app: app, store: store, pdf: pdf}
}

// do lanza la petición y devuelve status y cuerpo.
func (e *testEnv) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func (e *testEnv) createChamber(t *testing.T, name, tag string) string {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/api/chambers", map[string]any{"name": name, "capacity": "5000", "tag": tag})
	require.Equal(t, http.StatusCreated, status, string(body))
	return decode[dto.ChamberResponse](t, body).ID
}

func (e *testEnv) createProduct(t *testing.T) string {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/api/products", map[string]any{
		"name":         "Arveja",
		"raw_material": "arveja-cruda",
		"package_type": "pouch",
		"package_sizes": []map[string]any{
			{"size": "250", "unit": "gm", "count": 0},
			{"size": "500", "unit": "GM", "count": 0},
			{"size": "1", "unit": "kg", "count": 0},
		},
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	return decode[dto.ProductResponse](t, body).ID
}

func (e *testEnv) purchase(t *testing.T, chamberID string, count int, size, unit string) dto.PurchaseResponse {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/api/inventory/purchases", map[string]any{
		"vendor": "Agro SAS", "item": "arveja-cruda", "chamber_id": chamberID,
		"container_count": count, "container_size": size, "container_unit": unit,
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	return decode[dto.PurchaseResponse](t, body)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cámaras y productos
// ──────────────────────────────────────────────────────────────────────────────

func TestChambers_CRUD(t *testing.T) {
	env := newTestEnv(t)
	id := env.createChamber(t, "Seca 1", "dry")

	status, body := env.do(t, http.MethodPost, "/api/chambers", map[string]any{"name": "X", "capacity": "10", "tag": "humid"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_CHAMBER_TAG", decode[dto.ErrorResponse](t, body).Code)

	status, _ = env.do(t, http.MethodPost, "/api/chambers", map[string]any{"name": "Seca 1", "capacity": "10", "tag": "dry"})
	assert.Equal(t, http.StatusConflict, status, "nombre repetido")

	status, body = env.do(t, http.MethodGet, "/api/chambers/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Seca 1", decode[dto.ChamberResponse](t, body).Name)

	status, _ = env.do(t, http.MethodGet, "/api/chambers/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = env.do(t, http.MethodPut, "/api/chambers/"+id, map[string]any{"tag": "frozen"})
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, "frozen", decode[dto.ChamberResponse](t, body).Tag)

	status, body = env.do(t, http.MethodGet, "/api/chambers?limit=500", nil)
	require.Equal(t, http.StatusOK, status)
	list := decode[dto.ChamberListResponse](t, body)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, 100, list.Page.Limit)

	status, _ = env.do(t, http.MethodDelete, "/api/chambers/"+id, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = env.do(t, http.MethodDelete, "/api/chambers/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProducts_Create(t *testing.T) {
	env := newTestEnv(t)
	id := env.createProduct(t)

	status, body := env.do(t, http.MethodGet, "/api/products/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	p := decode[dto.ProductResponse](t, body)
	require.Len(t, p.PackageSizes, 3)
	assert.Equal(t, "gm", p.PackageSizes[1].Unit, "unidad normalizada")

	status, body = env.do(t, http.MethodPost, "/api/products", map[string]any{
		"name": "Maíz", "raw_material": "maiz", "package_type": "pouch",
		"package_sizes": []map[string]any{{"size": "1", "unit": "lb"}},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "UNKNOWN_UNIT", decode[dto.ErrorResponse](t, body).Code)

	status, body = env.do(t, http.MethodPost, "/api/products", map[string]any{
		"name": "Maíz", "raw_material": "maiz", "package_type": "sobre",
		"package_sizes": []map[string]any{{"size": "1", "unit": "kg"}},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "UNKNOWN_PACKAGE_TYPE", decode[dto.ErrorResponse](t, body).Code)

	status, _ = env.do(t, http.MethodGet, "/api/products/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras y stock
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchases_SumanStockYEstimanPaquetes(t *testing.T) {
	env := newTestEnv(t)
	dry := env.createChamber(t, "Seca 1", "dry")

	first := env.purchase(t, dry, 4, "25", "kg")
	assert.Equal(t, "100", first.Kilograms.String())
	second := env.purchase(t, dry, 2, "500", "gm")
	assert.Equal(t, "1", second.Kilograms.String())
	assert.Equal(t, "101", second.StockKg.String())

	status, body := env.do(t, http.MethodGet, "/api/chambers/"+dry+"/stock", nil)
	require.Equal(t, http.StatusOK, status)
	stock := decode[dto.ChamberStockResponse](t, body)
	require.Len(t, stock.Items, 1)
	assert.Equal(t, "101", stock.Items[0].Quantity.String())

	// 101 kg = 101000 g, tara pouch 500 gm = 6 g.
	status, body = env.do(t, http.MethodGet, "/api/chambers/"+dry+"/stock/max-packets?item=arveja-cruda&type=pouch&size=500&unit=gm", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	mp := decode[dto.MaxPacketsResponse](t, body)
	assert.Equal(t, "6", mp.TareGrams.String())
	assert.Equal(t, int64(16833), mp.MaxPackets)

	status, _ = env.do(t, http.MethodGet, "/api/chambers/"+dry+"/stock/max-packets?item=arveja-cruda&type=pouch&size=abc&unit=gm", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = env.do(t, http.MethodGet, "/api/chambers/"+dry+"/movements", nil)
	require.Equal(t, http.StatusOK, status)
	movs := decode[dto.ChamberMovementListResponse](t, body)
	require.Len(t, movs.Items, 2)
	assert.Equal(t, "RM_IN", movs.Items[0].Type)

	status, _ = env.do(t, http.MethodGet, "/api/chambers/"+dry+"/movements?from=ayer", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPurchases_Errores(t *testing.T) {
	env := newTestEnv(t)
	dry := env.createChamber(t, "Seca 1", "dry")

	status, body := env.do(t, http.MethodPost, "/api/inventory/purchases", map[string]any{
		"vendor": "Agro", "item": "arveja-cruda", "chamber_id": "no-existe",
		"container_count": 1, "container_size": "25", "container_unit": "kg",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "CHAMBER_NOT_FOUND", decode[dto.ErrorResponse](t, body).Code)

	status, body = env.do(t, http.MethodPost, "/api/inventory/purchases", map[string]any{
		"vendor": "Agro", "item": "arveja-cruda", "chamber_id": dry,
		"container_count": 1, "container_size": "25", "container_unit": "lb",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "UNKNOWN_UNIT", decode[dto.ErrorResponse](t, body).Code)

	assert.Zero(t, env.store.PurchaseCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Empaque
// ──────────────────────────────────────────────────────────────────────────────

func draft(productID, rmChamber string, pkgs map[string]any) map[string]any {
	return map[string]any{
		"product_id": productID,
		"rm_consumption": []map[string]any{
			{"chamber_id": rmChamber, "container_count": 2, "container_size": "25", "container_unit": "kg"},
		},
		"packages": pkgs,
	}
}

func TestPacking_PreviewYRechazo(t *testing.T) {
	env := newTestEnv(t)
	dry := env.createChamber(t, "Seca 1", "dry")
	frozen := env.createChamber(t, "Fría 1", "frozen")
	productID := env.createProduct(t)
	env.purchase(t, dry, 4, "25", "kg")

	in := draft(productID, dry, map[string]any{
		"500gm": map[string]any{"bag_count": 10, "packets_per_bag": 20, "chambers": map[string]int{dry: 6, frozen: 3}},
		"1kg":   map[string]any{"bag_count": 0, "packets_per_bag": 10},
	})

	status, body := env.do(t, http.MethodPost, "/api/packing/preview", in)
	require.Equal(t, http.StatusOK, status, string(body))
	preview := decode[dto.PackingPreviewResponse](t, body)
	require.Len(t, preview.Plan, 1, "el SKU sin bolsas se descarta")
	assert.Equal(t, 200, preview.Plan[0].TotalPackets)
	assert.False(t, preview.Validation.Valid)
	assert.Equal(t, "50", preview.TotalKgUsed.String())

	status, body = env.do(t, http.MethodPost, "/api/packing/events", in)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	rejected := decode[dto.PlanRejectedResponse](t, body)
	assert.Equal(t, "PLAN_INVALID", rejected.Code)
	require.Len(t, rejected.Details, 1)
	assert.Contains(t, rejected.Details[0], "faltan 1")
	assert.Equal(t, 9, rejected.Validation.Items[0].BagsAssigned)

	// Nada se descontó.
	status, body = env.do(t, http.MethodGet, "/api/chambers/"+dry+"/stock", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "100", decode[dto.ChamberStockResponse](t, body).Items[0].Quantity.String())
}

func TestPacking_ErroresDeBorrador(t *testing.T) {
	env := newTestEnv(t)
	dry := env.createChamber(t, "Seca 1", "dry")
	productID := env.createProduct(t)

	cases := map[string]struct {
		body   map[string]any
		status int
		code   string
	}{
		"producto inexistente": {draft("no-existe", dry, nil), http.StatusNotFound, "NOT_FOUND"},
		"cámara de destino desconocida": {
			draft(productID, dry, map[string]any{"500gm": map[string]any{"bag_count": 1, "packets_per_bag": 1, "chambers": map[string]int{"c-x": 1}}}),
			http.StatusNotFound, "CHAMBER_NOT_FOUND",
		},
		"SKU ajeno": {
			draft(productID, dry, map[string]any{"750gm": map[string]any{"bag_count": 1, "packets_per_bag": 1}}),
			http.StatusBadRequest, "VALIDATION",
		},
		"plan vacío": {
			draft(productID, dry, map[string]any{"500gm": map[string]any{"bag_count": 0, "packets_per_bag": 20}}),
			http.StatusBadRequest, "DRAFT_INCOMPLETE",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			status, body := env.do(t, http.MethodPost, "/api/packing/events", tc.body)
			assert.Equal(t, tc.status, status, string(body))
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, body).Code)
		})
	}
}

func TestPacking_StockInsuficienteNoRegistraNada(t *testing.T) {
	env := newTestEnv(t)
	dry := env.createChamber(t, "Seca 1", "dry")
	productID := env.createProduct(t)
	env.purchase(t, dry, 1, "25", "kg") // 25 kg, el borrador pide 50

	in := draft(productID, dry, map[string]any{
		"500gm": map[string]any{"bag_count": 2, "packets_per_bag": 20, "chambers": map[string]int{dry: 2}},
	})
	status, body := env.do(t, http.MethodPost, "/api/packing/events", in)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", decode[dto.ErrorResponse](t, body).Code)

	status, body = env.do(t, http.MethodGet, "/api/packing/events", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decode[dto.PackingEventListResponse](t, body).Items)
}

func TestPacking_RegistroCompletoYReporte(t *testing.T) {
	env := newTestEnv(t)
	dry := env.createChamber(t, "Seca 1", "dry")
	frozen := env.createChamber(t, "Fría 1", "frozen")
	productID := env.createProduct(t)
	env.purchase(t, dry, 4, "25", "kg")

	in := draft(productID, dry, map[string]any{
		"500gm": map[string]any{"bag_count": 10, "packets_per_bag": 20, "chambers": map[string]int{dry: 6, frozen: 4}},
		"250gm": map[string]any{"bag_count": 3, "packets_per_bag": 40, "chambers": map[string]int{frozen: 3}},
	})
	status, body := env.do(t, http.MethodPost, "/api/packing/events", in)
	require.Equal(t, http.StatusCreated, status, string(body))
	out := decode[dto.PackingSubmitResponse](t, body)
	require.NotEmpty(t, out.BatchID)
	require.Len(t, out.Events, 2)
	assert.Equal(t, "250gm", out.Events[0].SKUID, "orden de las presentaciones del producto")
	assert.Equal(t, "20 x 500 gm", out.Events[1].PacketDescriptor)

	// Materia prima descontada: 100 - 50.
	status, body = env.do(t, http.MethodGet, "/api/chambers/"+dry+"/stock", nil)
	require.Equal(t, http.StatusOK, status)
	dryStock := decode[dto.ChamberStockResponse](t, body)
	require.Len(t, dryStock.Items, 2)
	assert.Equal(t, "arveja-cruda", dryStock.Items[0].Item)
	assert.Equal(t, "50", dryStock.Items[0].Quantity.String())
	assert.Equal(t, packing.PackedItem(productID, "500gm"), dryStock.Items[1].Item)
	assert.Equal(t, "6", dryStock.Items[1].Quantity.String())

	status, body = env.do(t, http.MethodGet, "/api/chambers/"+frozen+"/stock", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[dto.ChamberStockResponse](t, body).Items, 2)

	status, body = env.do(t, http.MethodGet, "/api/packing/events?product_id="+productID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[dto.PackingEventListResponse](t, body).Items, 2)

	status, body = env.do(t, http.MethodGet, "/api/packing/events/"+out.Events[1].ID, nil)
	require.Equal(t, http.StatusOK, status)
	ev := decode[dto.PackingEventResponse](t, body)
	assert.Equal(t, out.BatchID, ev.BatchID)
	require.Len(t, ev.RMConsumption, 1)
	assert.Equal(t, "50", ev.RMConsumption[0].KgUsed.String())

	status, _ = env.do(t, http.MethodGet, "/api/packing/events/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, status)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/packing/"+out.BatchID+".pdf", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "empaque-"+out.BatchID+".pdf")
	require.NotNil(t, env.pdf.last)
	assert.Equal(t, 13, env.pdf.last.TotalBags)
	assert.Equal(t, 320, env.pdf.last.TotalPackets)
	assert.Equal(t, "Seca 1", env.pdf.last.ChamberName(dry))

	status, _ = env.do(t, http.MethodGet, "/api/reports/packing/no-existe.pdf", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
