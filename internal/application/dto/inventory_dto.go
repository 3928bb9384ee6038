package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto en o bajo su punto de reorden.
type ReplenishmentSuggestionDTO struct {
	ProductID          string          `json:"productId"`
	SKU                string          `json:"sku"`
	ProductName        string          `json:"productName"`
	CurrentStock       int             `json:"currentStock"`
	ReorderPoint       int             `json:"reorderPoint"`
	SuggestedOrderQty  int             `json:"suggestedOrderQty"`  // ReorderQuantity
	UnitPrice          decimal.Decimal `json:"unitPrice"`          // precio de lista
	EstimatedOrderCost decimal.Decimal `json:"estimatedOrderCost"` // SuggestedOrderQty * UnitPrice
	Priority           int             `json:"priority"`           // 1 = más urgente
}

// RestockOrderRequest body para POST /api/inventory/restock-orders.
// Quantity 0 usa el ReorderQuantity del producto; SupplierID vacío usa el proveedor por defecto.
type RestockOrderRequest struct {
	ProductID  string `json:"productId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"min=0"`
	SupplierID string `json:"supplierId"`
}

// StockAdjustmentRequest body para POST /api/inventory/adjustments.
type StockAdjustmentRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Delta     int    `json:"delta" validate:"ne=0"`
	Reason    string `json:"reason" validate:"max=300"`
}

// StockAdjustmentResponse nivel resultante y movimiento registrado.
type StockAdjustmentResponse struct {
	StockLevel *entity.StockLevel    `json:"stockLevel"`
	Movement   *entity.StockMovement `json:"movement"`
}
