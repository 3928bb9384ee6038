package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// InventoryReportDTO reporte de inventario.
type InventoryReportDTO struct {
	TotalProducts      int                `json:"totalProducts"`
	TotalStockQuantity int                `json:"totalStockQuantity"`
	CategoriesCount    int                `json:"categoriesCount"`
	LowStockCount      int                `json:"lowStockCount"`
	LowStockProducts   []LowStockAlertDTO `json:"lowStockProducts"`
}

// StatusBucketDTO conteo y porcentaje de un estado de orden.
type StatusBucketDTO struct {
	Status     string          `json:"status"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"` // 2 decimales
}

// OrderTypeReportDTO métricas de un tipo de orden (compra o venta).
type OrderTypeReportDTO struct {
	Count    int               `json:"count"`
	Value    decimal.Decimal   `json:"value"` // Σ qty * unitPrice
	Statuses []StatusBucketDTO `json:"statuses"`
}

// OrdersReportDTO reporte de órdenes.
type OrdersReportDTO struct {
	Purchase OrderTypeReportDTO `json:"purchase"`
	Sales    OrderTypeReportDTO `json:"sales"`
	Overall  []StatusBucketDTO  `json:"overall"`
}

// MovementsReportDTO reporte de movimientos recientes.
type MovementsReportDTO struct {
	TotalMovements int                     `json:"totalMovements"`
	ByType         map[string]int          `json:"byType"`
	Recent         []*entity.StockMovement `json:"recent"` // los 10 más recientes
}

// CategoryValueDTO valor de inventario de una categoría.
type CategoryValueDTO struct {
	Category   string          `json:"category"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ProductValueDTO valor en stock de un producto.
type ProductValueDTO struct {
	ProductID   string          `json:"productId"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Value       decimal.Decimal `json:"value"`
}

// ValuationReportDTO reporte de valorización.
type ValuationReportDTO struct {
	TotalValue           decimal.Decimal    `json:"totalValue"`
	CategoryDistribution []CategoryValueDTO `json:"categoryDistribution"` // mayor valor primero
	TopProducts          []ProductValueDTO  `json:"topProducts"`          // 10 de mayor valor
}
