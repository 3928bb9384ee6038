package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/inventario-dashboard/internal/application/billing"
	"github.com/jhoicas/inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	StockLevelUC    *usecase.StockLevelUseCase
	OrderUC         *usecase.OrderUseCase
	StockMovementUC *usecase.StockMovementUseCase
	SupplierUC      *usecase.SupplierUseCase
	InvoiceUC       *billing.InvoiceUseCase
	InvoicePDF      *billing.PDFUseCase
	DashboardUC     *appanalytics.DashboardUseCase
	ReportsUC       *appanalytics.ReportsUseCase
	Replenishment   *inventory.ReplenishmentUseCase
	Adjustment      *inventory.StockAdjustmentUseCase
	// JWTSecret vacío deja /api abierta (modo demo).
	JWTSecret string
}

func passThrough(c *fiber.Ctx) error { return c.Next() }

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Con JWT: lectura para cualquier rol válido, escritura solo admin/manager.
	write := fiber.Handler(passThrough)
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
		write = RequireRole(WriterRoles...)
	}

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/categories", productHandler.Categories)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", write, productHandler.Create)
	products.Put("/:id", write, productHandler.Update)
	products.Patch("/:id", write, productHandler.Update)
	products.Delete("/:id", write, productHandler.Delete)

	// Stock levels
	levels := api.Group("/stock-levels")
	levelHandler := NewStockLevelHandler(deps.StockLevelUC)
	levels.Get("/", levelHandler.List)
	levels.Get("/:id", levelHandler.GetByID)
	levels.Post("/", write, levelHandler.Create)
	levels.Put("/:id", write, levelHandler.Update)
	levels.Patch("/:id", write, levelHandler.Update)
	levels.Delete("/:id", write, levelHandler.Delete)

	// Orders
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/", write, orderHandler.Create)
	orders.Put("/:id", write, orderHandler.Update)
	orders.Patch("/:id", write, orderHandler.Update)
	orders.Post("/:id/advance", write, orderHandler.Advance)
	orders.Delete("/:id", write, orderHandler.Delete)

	// Stock movements
	movements := api.Group("/stock-movements")
	movementHandler := NewStockMovementHandler(deps.StockMovementUC)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Post("/", write, movementHandler.Create)
	movements.Put("/:id", write, movementHandler.Update)
	movements.Delete("/:id", write, movementHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/statistics", supplierHandler.Statistics)
	suppliers.Get("/categories", supplierHandler.Categories)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", write, supplierHandler.Create)
	suppliers.Put("/:id", write, supplierHandler.Update)
	suppliers.Put("/:id/rating", write, supplierHandler.UpdateRating)
	suppliers.Put("/:id/kpis", write, supplierHandler.UpdateKPIs)
	suppliers.Delete("/:id", write, supplierHandler.Delete)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Post("/", write, invoiceHandler.Create)
	invoices.Put("/:id", write, invoiceHandler.Update)
	invoices.Delete("/:id", write, invoiceHandler.Delete)

	// Dashboard y reportes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportsUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
	reports := api.Group("/reports")
	reports.Get("/inventory", dashboardHandler.InventoryReport)
	reports.Get("/orders", dashboardHandler.OrdersReport)
	reports.Get("/movements", dashboardHandler.MovementsReport)
	reports.Get("/valuation", dashboardHandler.ValuationReport)

	// Inventario: reposición y ajustes
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Replenishment, deps.Adjustment)
	inv.Get("/replenishment-list", inventoryHandler.ReplenishmentList)
	inv.Post("/restock-orders", write, inventoryHandler.CreateRestockOrder)
	inv.Post("/adjustments", write, inventoryHandler.Adjust)
}
