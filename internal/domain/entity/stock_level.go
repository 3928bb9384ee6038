package entity

import "time"

// StockLevel representa el stock actual de un producto (uno a uno con Product por convención,
// sin integridad referencial).
type StockLevel struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"productId"`
	WarehouseID       string    `json:"warehouseId,omitempty"`
	Quantity          int       `json:"quantity"`
	ReservedQuantity  int       `json:"reservedQuantity"`
	AvailableQuantity int       `json:"availableQuantity"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

// StockLevelPatch actualización parcial de un nivel de stock.
// QuantityDelta suma (o resta) sobre la cantidad vigente sin bajar de cero; se aplica después de Quantity.
type StockLevelPatch struct {
	ProductID         *string
	WarehouseID       *string
	Quantity          *int
	QuantityDelta     *int
	ReservedQuantity  *int
	AvailableQuantity *int
}

// Apply mezcla el patch sobre s. Si cambia la cantidad o la reserva y el patch no fija
// AvailableQuantity, este se recalcula como Quantity - ReservedQuantity.
func (patch StockLevelPatch) Apply(s *StockLevel) {
	if patch.ProductID != nil {
		s.ProductID = *patch.ProductID
	}
	if patch.WarehouseID != nil {
		s.WarehouseID = *patch.WarehouseID
	}
	if patch.Quantity != nil {
		s.Quantity = *patch.Quantity
	}
	if patch.QuantityDelta != nil {
		s.Quantity = max(0, s.Quantity+*patch.QuantityDelta)
	}
	if patch.ReservedQuantity != nil {
		s.ReservedQuantity = *patch.ReservedQuantity
	}
	switch {
	case patch.AvailableQuantity != nil:
		s.AvailableQuantity = *patch.AvailableQuantity
	case patch.Quantity != nil || patch.QuantityDelta != nil || patch.ReservedQuantity != nil:
		s.AvailableQuantity = s.Quantity - s.ReservedQuantity
	}
}
