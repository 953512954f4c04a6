package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empaque-api/internal/application/inventory"
	"github.com/jhoicas/Empaque-api/internal/application/packing"
	"github.com/jhoicas/Empaque-api/internal/application/report"
	"github.com/jhoicas/Empaque-api/internal/application/usecase"
	"github.com/jhoicas/Empaque-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ChamberUC  *usecase.ChamberUseCase
	ProductUC  *usecase.ProductUseCase
	PurchaseUC *inventory.PurchaseUseCase
	StockUC    *inventory.StockUseCase
	PackingUC  *packing.UseCase
	ReportUC   *report.PDFUseCase
	Logger     *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	eh := errorHandler{log: log.Named("http")}
	api := app.Group("/api")

	// Chambers
	chambers := api.Group("/chambers")
	chamberHandler := NewChamberHandler(deps.ChamberUC, eh)
	inventoryHandler := NewInventoryHandler(deps.PurchaseUC, deps.StockUC, eh)
	chambers.Post("/", chamberHandler.Create)
	chambers.Get("/", chamberHandler.List)
	chambers.Get("/:id", chamberHandler.GetByID)
	chambers.Put("/:id", chamberHandler.Update)
	chambers.Delete("/:id", chamberHandler.Delete)
	chambers.Get("/:id/stock", inventoryHandler.ChamberStock)
	chambers.Get("/:id/stock/max-packets", inventoryHandler.MaxPackets)
	chambers.Get("/:id/movements", inventoryHandler.Movements)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, eh)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Inventory
	api.Post("/inventory/purchases", inventoryHandler.RegisterPurchase)

	// Packing
	pk := api.Group("/packing")
	packingHandler := NewPackingHandler(deps.PackingUC, eh)
	pk.Post("/preview", packingHandler.Preview)
	pk.Post("/events", packingHandler.Submit)
	pk.Get("/events", packingHandler.List)
	pk.Get("/events/:id", packingHandler.GetByID)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC, eh)
	api.Get("/reports/packing/:batch_id.pdf", reportHandler.PackingBatchPDF)
}
