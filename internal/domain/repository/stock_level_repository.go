package repository

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// StockLevelRepository define el puerto para consultar/actualizar niveles de stock.
type StockLevelRepository interface {
	Create(ctx context.Context, level *entity.StockLevel) (*entity.StockLevel, error)
	GetByID(ctx context.Context, id string) (*entity.StockLevel, error)
	// GetByProductID devuelve el primer nivel del producto, o (nil, nil) si no tiene.
	GetByProductID(ctx context.Context, productID string) (*entity.StockLevel, error)
	List(ctx context.Context) ([]*entity.StockLevel, error)
	Update(ctx context.Context, id string, patch entity.StockLevelPatch) (*entity.StockLevel, error)
	// UpdateFunc calcula el patch sobre el estado vigente y lo aplica de forma atómica.
	// Si decide devuelve error no se modifica nada.
	UpdateFunc(ctx context.Context, id string, decide func(current entity.StockLevel) (entity.StockLevelPatch, error)) (*entity.StockLevel, error)
	Delete(ctx context.Context, id string) error
}
