package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU             string          `json:"sku" validate:"required,min=1,max=100"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Description     string          `json:"description"`
	Category        string          `json:"category" validate:"required,max=100"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Unit            string          `json:"unit" validate:"max=50"`
	ReorderPoint    int             `json:"reorderPoint" validate:"min=0"`
	ReorderQuantity int             `json:"reorderQuantity" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto: solo se aplican los campos enviados.
type UpdateProductRequest struct {
	SKU             *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string          `json:"description"`
	Category        *string          `json:"category" validate:"omitempty,min=1,max=100"`
	UnitPrice       *decimal.Decimal `json:"unitPrice"`
	Unit            *string          `json:"unit" validate:"omitempty,max=50"`
	ReorderPoint    *int             `json:"reorderPoint" validate:"omitempty,min=0"`
	ReorderQuantity *int             `json:"reorderQuantity" validate:"omitempty,min=0"`
}

// Patch convierte la petición en el patch de dominio.
func (r UpdateProductRequest) Patch() entity.ProductPatch {
	return entity.ProductPatch{
		SKU:             r.SKU,
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		UnitPrice:       r.UnitPrice,
		Unit:            r.Unit,
		ReorderPoint:    r.ReorderPoint,
		ReorderQuantity: r.ReorderQuantity,
	}
}

// ProductFilter filtros del listado de productos.
type ProductFilter struct {
	Search   string `query:"search"`   // nombre o SKU, sin distinguir mayúsculas
	Category string `query:"category"` // coincidencia exacta
}

// CreateProductResponse producto creado junto con su nivel de stock inicial.
type CreateProductResponse struct {
	Product    *entity.Product    `json:"product"`
	StockLevel *entity.StockLevel `json:"stockLevel"`
}
