package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// ReorderPoint y ReorderQuantity alimentan la detección de stock bajo y la reposición.
// Los tags json definen el formato de los fixtures y de las respuestas de la API.
type Product struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Unit            string          `json:"unit"`
	ReorderPoint    int             `json:"reorderPoint"`
	ReorderQuantity int             `json:"reorderQuantity"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ProductPatch actualización parcial de un producto: solo se aplican los campos no nil.
type ProductPatch struct {
	SKU             *string
	Name            *string
	Description     *string
	Category        *string
	UnitPrice       *decimal.Decimal
	Unit            *string
	ReorderPoint    *int
	ReorderQuantity *int
}

// Apply mezcla el patch sobre p. No toca ID ni marcas de tiempo.
func (patch ProductPatch) Apply(p *Product) {
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.UnitPrice != nil {
		p.UnitPrice = *patch.UnitPrice
	}
	if patch.Unit != nil {
		p.Unit = *patch.Unit
	}
	if patch.ReorderPoint != nil {
		p.ReorderPoint = *patch.ReorderPoint
	}
	if patch.ReorderQuantity != nil {
		p.ReorderQuantity = *patch.ReorderQuantity
	}
}
