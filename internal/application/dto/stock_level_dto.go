package dto

import "github.com/jhoicas/inventario-dashboard/internal/domain/entity"

// CreateStockLevelRequest entrada para crear un nivel de stock.
type CreateStockLevelRequest struct {
	ProductID        string `json:"productId" validate:"required"`
	WarehouseID      string `json:"warehouseId"`
	Quantity         int    `json:"quantity" validate:"min=0"`
	ReservedQuantity int    `json:"reservedQuantity" validate:"min=0"`
}

// UpdateStockLevelRequest actualización parcial. AvailableQuantity se recalcula, no se recibe.
type UpdateStockLevelRequest struct {
	WarehouseID      *string `json:"warehouseId"`
	Quantity         *int    `json:"quantity" validate:"omitempty,min=0"`
	ReservedQuantity *int    `json:"reservedQuantity" validate:"omitempty,min=0"`
}

// Patch convierte la petición en el patch de dominio.
func (r UpdateStockLevelRequest) Patch() entity.StockLevelPatch {
	return entity.StockLevelPatch{
		WarehouseID:      r.WarehouseID,
		Quantity:         r.Quantity,
		ReservedQuantity: r.ReservedQuantity,
	}
}
