package memory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepository)(nil)

// StockMovementRepository registro en memoria de movimientos de inventario.
type StockMovementRepository struct {
	c *collection[entity.StockMovement]
}

func newStockMovementRepository(e *env) *StockMovementRepository {
	return &StockMovementRepository{c: newCollection(e, EntityStockMovement,
		func(m *entity.StockMovement) string { return m.ID },
		func(m *entity.StockMovement) *entity.StockMovement { cp := *m; return &cp },
	)}
}

// Create registra el movimiento con Timestamp = ahora.
func (r *StockMovementRepository) Create(ctx context.Context, movement *entity.StockMovement) (*entity.StockMovement, error) {
	return r.c.insert(ctx, movement, func(m *entity.StockMovement, id string, now time.Time) {
		m.ID = id
		m.Timestamp = now
	})
}

func (r *StockMovementRepository) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	return r.c.get(ctx, id)
}

func (r *StockMovementRepository) List(ctx context.Context) ([]*entity.StockMovement, error) {
	return r.c.list(ctx)
}

// ListByProductID movimientos de un producto, más recientes primero.
func (r *StockMovementRepository) ListByProductID(ctx context.Context, productID string) ([]*entity.StockMovement, error) {
	return r.c.filter(ctx, func(m *entity.StockMovement) bool { return m.ProductID == productID })
}

// Update aplica el patch. Timestamp conserva la fecha original del movimiento.
func (r *StockMovementRepository) Update(ctx context.Context, id string, patch entity.StockMovementPatch) (*entity.StockMovement, error) {
	return r.c.update(ctx, id, func(m *entity.StockMovement, _ time.Time) {
		patch.Apply(m)
	})
}

func (r *StockMovementRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
