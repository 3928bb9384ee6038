package dto

import "github.com/jhoicas/inventario-dashboard/internal/domain/entity"

// CreateStockMovementRequest entrada para registrar un movimiento.
type CreateStockMovementRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	Type         string `json:"type" validate:"required,oneof=receipt shipment transfer adjustment"`
	Quantity     int    `json:"quantity"`
	FromLocation string `json:"fromLocation"`
	ToLocation   string `json:"toLocation"`
	Reference    string `json:"reference"`
	Notes        string `json:"notes"`
}

// UpdateStockMovementRequest actualización parcial de un movimiento.
type UpdateStockMovementRequest struct {
	Type         *string `json:"type" validate:"omitempty,oneof=receipt shipment transfer adjustment"`
	Quantity     *int    `json:"quantity"`
	FromLocation *string `json:"fromLocation"`
	ToLocation   *string `json:"toLocation"`
	Reference    *string `json:"reference"`
	Notes        *string `json:"notes"`
}

// Patch convierte la petición en el patch de dominio.
func (r UpdateStockMovementRequest) Patch() entity.StockMovementPatch {
	return entity.StockMovementPatch{
		Type:         r.Type,
		Quantity:     r.Quantity,
		FromLocation: r.FromLocation,
		ToLocation:   r.ToLocation,
		Reference:    r.Reference,
		Notes:        r.Notes,
	}
}

// StockMovementFilter filtros del listado de movimientos.
type StockMovementFilter struct {
	ProductID string `query:"productId"`
	Type      string `query:"type" validate:"omitempty,oneof=receipt shipment transfer adjustment"`
}
