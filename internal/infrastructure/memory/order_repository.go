package memory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepository)(nil)

// OrderRepository implementación en memoria del puerto OrderRepository.
type OrderRepository struct {
	c *collection[entity.Order]
}

func newOrderRepository(e *env) *OrderRepository {
	return &OrderRepository{c: newCollection(e, EntityOrder,
		func(o *entity.Order) string { return o.ID },
		func(o *entity.Order) *entity.Order { cp := o.Clone(); return &cp },
	)}
}

// Create asigna id y marcas de tiempo. OrderDate se completa con la hora actual si viene vacía.
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	return r.c.insert(ctx, order, func(o *entity.Order, id string, now time.Time) {
		o.ID = id
		if o.OrderDate.IsZero() {
			o.OrderDate = now
		}
		o.CreatedAt = now
		o.UpdatedAt = now
	})
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.c.get(ctx, id)
}

func (r *OrderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	return r.c.list(ctx)
}

// ListByType devuelve las órdenes de compra o de venta, más recientes primero.
func (r *OrderRepository) ListByType(ctx context.Context, orderType string) ([]*entity.Order, error) {
	return r.c.filter(ctx, func(o *entity.Order) bool { return o.Type == orderType })
}

func (r *OrderRepository) Update(ctx context.Context, id string, patch entity.OrderPatch) (*entity.Order, error) {
	return r.c.update(ctx, id, func(o *entity.Order, now time.Time) {
		patch.Apply(o)
		o.UpdatedAt = now
	})
}

// UpdateFunc decide el patch con la orden vigente bajo el lock de escritura.
func (r *OrderRepository) UpdateFunc(ctx context.Context, id string, decide func(current entity.Order) (entity.OrderPatch, error)) (*entity.Order, error) {
	return r.c.updateChecked(ctx, id, func(o *entity.Order, now time.Time) error {
		patch, err := decide(o.Clone())
		if err != nil {
			return err
		}
		patch.Apply(o)
		o.UpdatedAt = now
		return nil
	})
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
