package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// OrderItemRequest línea de una orden.
type OrderItemRequest struct {
	ProductID   string          `json:"productId" validate:"required"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity" validate:"min=1"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateOrderRequest entrada para crear una orden de compra o venta.
// OrderNumber y Status son opcionales (PO-/SO- + timestamp y pending).
type CreateOrderRequest struct {
	OrderNumber  string             `json:"orderNumber"`
	Type         string             `json:"type" validate:"required,oneof=purchase sales"`
	Status       string             `json:"status" validate:"omitempty,oneof=pending confirmed shipped completed"`
	SupplierID   string             `json:"supplierId"`
	CustomerID   string             `json:"customerId"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	OrderDate    *time.Time         `json:"orderDate"`
	ExpectedDate *time.Time         `json:"expectedDate"`
	Notes        string             `json:"notes"`
}

// UpdateOrderRequest actualización parcial. Items, si se envía, reemplaza todas las líneas.
type UpdateOrderRequest struct {
	OrderNumber  *string            `json:"orderNumber" validate:"omitempty,min=1"`
	Status       *string            `json:"status" validate:"omitempty,oneof=pending confirmed shipped completed"`
	SupplierID   *string            `json:"supplierId"`
	CustomerID   *string            `json:"customerId"`
	Items        []OrderItemRequest `json:"items" validate:"omitempty,dive"`
	OrderDate    *time.Time         `json:"orderDate"`
	ExpectedDate *time.Time         `json:"expectedDate"`
	Notes        *string            `json:"notes"`
}

// Patch convierte la petición en el patch de dominio.
func (r UpdateOrderRequest) Patch() entity.OrderPatch {
	return entity.OrderPatch{
		OrderNumber:  r.OrderNumber,
		Status:       r.Status,
		SupplierID:   r.SupplierID,
		CustomerID:   r.CustomerID,
		Items:        OrderItems(r.Items),
		OrderDate:    r.OrderDate,
		ExpectedDate: r.ExpectedDate,
		Notes:        r.Notes,
	}
}

// OrderItems convierte las líneas de la petición. nil permanece nil.
func OrderItems(in []OrderItemRequest) []entity.OrderItem {
	if in == nil {
		return nil
	}
	out := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		out = append(out, entity.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return out
}

// OrderFilter filtros del listado de órdenes.
type OrderFilter struct {
	Type   string `query:"type" validate:"omitempty,oneof=purchase sales"`
	Status string `query:"status" validate:"omitempty,oneof=pending confirmed shipped completed"`
}
