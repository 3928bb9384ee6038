package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeReceipt    = "receipt"    // entrada
	MovementTypeShipment   = "shipment"   // salida
	MovementTypeTransfer   = "transfer"   // entre ubicaciones
	MovementTypeAdjustment = "adjustment" // ajuste manual
)

// StockMovement registro (append-only) de un cambio de inventario.
// No se concilia contra StockLevel.
type StockMovement struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	Type         string    `json:"type"`
	Quantity     int       `json:"quantity"`
	FromLocation string    `json:"fromLocation,omitempty"`
	ToLocation   string    `json:"toLocation,omitempty"`
	Reference    string    `json:"reference,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// StockMovementPatch actualización parcial de un movimiento.
type StockMovementPatch struct {
	ProductID    *string
	Type         *string
	Quantity     *int
	FromLocation *string
	ToLocation   *string
	Reference    *string
	Notes        *string
}

// Apply mezcla el patch sobre m. Timestamp se conserva.
func (patch StockMovementPatch) Apply(m *StockMovement) {
	if patch.ProductID != nil {
		m.ProductID = *patch.ProductID
	}
	if patch.Type != nil {
		m.Type = *patch.Type
	}
	if patch.Quantity != nil {
		m.Quantity = *patch.Quantity
	}
	if patch.FromLocation != nil {
		m.FromLocation = *patch.FromLocation
	}
	if patch.ToLocation != nil {
		m.ToLocation = *patch.ToLocation
	}
	if patch.Reference != nil {
		m.Reference = *patch.Reference
	}
	if patch.Notes != nil {
		m.Notes = *patch.Notes
	}
}
