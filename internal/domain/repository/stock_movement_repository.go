package repository

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// StockMovementRepository define el puerto del registro de movimientos de inventario.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) (*entity.StockMovement, error)
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	List(ctx context.Context) ([]*entity.StockMovement, error)
	ListByProductID(ctx context.Context, productID string) ([]*entity.StockMovement, error)
	Update(ctx context.Context, id string, patch entity.StockMovementPatch) (*entity.StockMovement, error)
	Delete(ctx context.Context, id string) error
}
