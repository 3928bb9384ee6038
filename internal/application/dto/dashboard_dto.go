package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProducts       int             `json:"totalProducts"`
	LowStockCount       int             `json:"lowStockCount"`
	ActiveOrders        int             `json:"activeOrders"` // status != completed
	TotalInventoryValue decimal.Decimal `json:"totalInventoryValue"`

	// Alertas de stock bajo con el nivel que las dispara.
	LowStockAlerts []LowStockAlertDTO `json:"lowStockAlerts"`

	// Las 5 órdenes más recientes (compra y venta).
	RecentOrders []*entity.Order `json:"recentOrders"`
}

// LowStockAlertDTO producto en o bajo su punto de reorden.
type LowStockAlertDTO struct {
	ProductID       string `json:"productId"`
	SKU             string `json:"sku"`
	ProductName     string `json:"productName"`
	Category        string `json:"category"`
	CurrentStock    int    `json:"currentStock"`
	ReorderPoint    int    `json:"reorderPoint"`
	ReorderQuantity int    `json:"reorderQuantity"`
}
