package entity

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de orden.
const (
	OrderTypePurchase = "purchase" // entrada (compra a proveedor)
	OrderTypeSales    = "sales"    // salida (venta a cliente)
)

// Estados de orden. La progresión es lineal pending → confirmed → shipped → completed,
// pero el almacén no la impone.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
)

// OrderStatuses orden canónico de los estados (histogramas, reportes).
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusShipped,
	OrderStatusCompleted,
}

// OrderItem línea de una orden.
type OrderItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Order orden de compra o de venta.
type Order struct {
	ID           string      `json:"id"`
	OrderNumber  string      `json:"orderNumber"`
	Type         string      `json:"type"`
	Status       string      `json:"status"`
	SupplierID   string      `json:"supplierId,omitempty"`
	CustomerID   string      `json:"customerId,omitempty"`
	Items        []OrderItem `json:"items"`
	OrderDate    time.Time   `json:"orderDate"`
	ExpectedDate *time.Time  `json:"expectedDate,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Clone copia profunda (Items y ExpectedDate no se comparten).
func (o Order) Clone() Order {
	if o.Items != nil {
		o.Items = slices.Clone(o.Items)
	}
	if o.ExpectedDate != nil {
		d := *o.ExpectedDate
		o.ExpectedDate = &d
	}
	return o
}

// OrderPatch actualización parcial de una orden. Items, si no es nil, reemplaza la lista completa.
type OrderPatch struct {
	OrderNumber  *string
	Type         *string
	Status       *string
	SupplierID   *string
	CustomerID   *string
	Items        []OrderItem
	OrderDate    *time.Time
	ExpectedDate *time.Time
	Notes        *string
}

// Apply mezcla el patch sobre o.
func (patch OrderPatch) Apply(o *Order) {
	if patch.OrderNumber != nil {
		o.OrderNumber = *patch.OrderNumber
	}
	if patch.Type != nil {
		o.Type = *patch.Type
	}
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.SupplierID != nil {
		o.SupplierID = *patch.SupplierID
	}
	if patch.CustomerID != nil {
		o.CustomerID = *patch.CustomerID
	}
	if patch.Items != nil {
		o.Items = slices.Clone(patch.Items)
	}
	if patch.OrderDate != nil {
		o.OrderDate = *patch.OrderDate
	}
	if patch.ExpectedDate != nil {
		d := *patch.ExpectedDate
		o.ExpectedDate = &d
	}
	if patch.Notes != nil {
		o.Notes = *patch.Notes
	}
}
