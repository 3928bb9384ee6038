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

	appanalytics "github.com/jhoicas/inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/inventario-dashboard/internal/application/billing"
	"github.com/jhoicas/inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/inventario-dashboard/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-dashboard/internal/interfaces/http"
	"github.com/jhoicas/inventario-dashboard/pkg/config"
	"github.com/jhoicas/inventario-dashboard/pkg/logger"
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
		Dur("store_latency", cfg.Store.Latency()).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	// Almacén en memoria sembrado con los fixtures (embebidos o SEED_DIR).
	store := memory.NewStore(memory.Options{Latency: cfg.Store.Latency()})
	fixtures, err := memory.LoadFixtures(cfg.Store.SeedDir)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar fixtures")
	}
	store.Seed(fixtures)
	log.Info().
		Int("products", len(fixtures.Products)).
		Int("stock_levels", len(fixtures.StockLevels)).
		Int("orders", len(fixtures.Orders)).
		Int("suppliers", len(fixtures.Suppliers)).
		Int("invoices", len(fixtures.Invoices)).
		Msg("almacén sembrado")

	storeLog := log.Component("store")
	unsubscribe := store.Subscribe(func(ev memory.ChangeEvent) {
		storeLog.Debug().
			Str("entity", ev.Entity).
			Str("action", ev.Action).
			Str("id", ev.ID).
			Msg("cambio")
	})
	defer unsubscribe()

	repos := appanalytics.Repos{
		Products:       store.Products,
		StockLevels:    store.StockLevels,
		Orders:         store.Orders,
		StockMovements: store.StockMovements,
	}

	productUC := usecase.NewProductUseCase(store.Products, store.StockLevels, cfg.Store.DefaultWarehouseID)
	stockLevelUC := usecase.NewStockLevelUseCase(store.StockLevels, cfg.Store.DefaultWarehouseID)
	orderUC := usecase.NewOrderUseCase(store.Orders)
	movementUC := usecase.NewStockMovementUseCase(store.StockMovements)
	supplierUC := usecase.NewSupplierUseCase(store.Suppliers)

	dashboardUC := appanalytics.NewDashboardUseCase(repos)
	reportsUC := appanalytics.NewReportsUseCase(repos)

	replenishmentUC := inventory.NewReplenishmentUseCase(
		store.Products, store.StockLevels, store.Orders, cfg.Store.DefaultSupplierID,
	)
	adjustmentUC := inventory.NewStockAdjustmentUseCase(store.StockLevels, store.StockMovements)

	// PDF: representación gráfica de la factura
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(infrapdf.Issuer{
		Name:    cfg.Billing.IssuerName,
		Email:   cfg.Billing.IssuerEmail,
		Address: cfg.Billing.IssuerAddress,
	})
	invoiceUC := billing.NewInvoiceUseCase(store.Invoices)
	invoicePDFUC := billing.NewPDFUseCase(store.Invoices, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:       productUC,
		StockLevelUC:    stockLevelUC,
		OrderUC:         orderUC,
		StockMovementUC: movementUC,
		SupplierUC:      supplierUC,
		InvoiceUC:       invoiceUC,
		InvoicePDF:      invoicePDFUC,
		DashboardUC:     dashboardUC,
		ReportsUC:       reportsUC,
		Replenishment:   replenishmentUC,
		Adjustment:      adjustmentUC,
		JWTSecret:       cfg.JWT.Secret,
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
