package repository

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para órdenes de compra y venta.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) (*entity.Order, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	ListByType(ctx context.Context, orderType string) ([]*entity.Order, error)
	Update(ctx context.Context, id string, patch entity.OrderPatch) (*entity.Order, error)
	// UpdateFunc calcula el patch sobre la orden vigente y lo aplica de forma atómica.
	UpdateFunc(ctx context.Context, id string, decide func(current entity.Order) (entity.OrderPatch, error)) (*entity.Order, error)
	Delete(ctx context.Context, id string) error
}
