package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventario-dashboard/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del tablero y de los reportes.
type DashboardHandler struct {
	uc      *appanalytics.DashboardUseCase
	reports *appanalytics.ReportsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, reports *appanalytics.ReportsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, reports: reports}
}

// GetSummary godoc
// @Summary      Resumen del tablero
// @Description  Totales de productos, stock bajo, órdenes activas, valor de inventario,
// @Description  hasta 5 alertas de stock bajo y las 5 órdenes más recientes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// InventoryReport godoc
// @Summary      Reporte de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryReportDTO
// @Router       /api/reports/inventory [get]
func (h *DashboardHandler) InventoryReport(c *fiber.Ctx) error {
	out, err := h.reports.Inventory(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OrdersReport godoc
// @Summary      Reporte de órdenes por tipo y estado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrdersReportDTO
// @Router       /api/reports/orders [get]
func (h *DashboardHandler) OrdersReport(c *fiber.Ctx) error {
	out, err := h.reports.Orders(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MovementsReport godoc
// @Summary      Reporte de movimientos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MovementsReportDTO
// @Router       /api/reports/movements [get]
func (h *DashboardHandler) MovementsReport(c *fiber.Ctx) error {
	out, err := h.reports.StockMovements(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ValuationReport godoc
// @Summary      Valorización por categoría y productos de mayor valor
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ValuationReportDTO
// @Router       /api/reports/valuation [get]
func (h *DashboardHandler) ValuationReport(c *fiber.Ctx) error {
	out, err := h.reports.Valuation(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
