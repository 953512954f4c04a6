package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	"github.com/jhoicas/Empaque-api/internal/application/inventory"
	"github.com/jhoicas/Empaque-api/internal/application/packing"
	"github.com/jhoicas/Empaque-api/internal/application/report"
	"github.com/jhoicas/Empaque-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Empaque-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Empaque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Empaque-api/internal/infrastructure/taretable"
	httpRouter "github.com/jhoicas/Empaque-api/internal/interfaces/http"
	"github.com/jhoicas/Empaque-api/pkg/config"
	"github.com/jhoicas/Empaque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	tares, err := taretable.Load(cfg.Packaging.TareTablePath)
	if err != nil {
		log.Fatal().Err(err).Msg("tabla de taras")
	}
	if cfg.Packaging.TareTablePath != "" {
		log.Info().Str("path", cfg.Packaging.TareTablePath).Msg("tabla de taras cargada")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	chamberRepo := postgres.NewChamberRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewChamberStockRepository(pool)
	movementRepo := postgres.NewChamberMovementRepository(pool)
	eventRepo := postgres.NewPackingEventRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	chamberUC := usecase.NewChamberUseCase(chamberRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	purchaseUC := inventory.NewPurchaseUseCase(txRunner, chamberRepo)
	stockUC := inventory.NewStockUseCase(chamberRepo, stockRepo, movementRepo, tares)
	packingUC := packing.NewUseCase(txRunner, productRepo, chamberRepo, eventRepo, log)

	// PDF del lote de empaque, números con formato es-CO
	pdfGenerator := infrapdf.NewMarotoReportGenerator(language.MustParse("es-CO"))
	reportUC := report.NewPDFUseCase(eventRepo, chamberRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Empaque API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger no disponible")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ChamberUC:  chamberUC,
		ProductUC:  productUC,
		PurchaseUC: purchaseUC,
		StockUC:    stockUC,
		PackingUC:  packingUC,
		ReportUC:   reportUC,
		Logger:     log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
