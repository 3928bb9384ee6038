package memory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepository)(nil)

// StockLevelRepository implementación en memoria del puerto StockLevelRepository.
type StockLevelRepository struct {
	c *collection[entity.StockLevel]
}

func newStockLevelRepository(e *env) *StockLevelRepository {
	return &StockLevelRepository{c: newCollection(e, EntityStockLevel,
		func(s *entity.StockLevel) string { return s.ID },
		func(s *entity.StockLevel) *entity.StockLevel { cp := *s; return &cp },
	)}
}

func (r *StockLevelRepository) Create(ctx context.Context, level *entity.StockLevel) (*entity.StockLevel, error) {
	return r.c.insert(ctx, level, func(s *entity.StockLevel, id string, now time.Time) {
		s.ID = id
		s.LastUpdated = now
	})
}

func (r *StockLevelRepository) GetByID(ctx context.Context, id string) (*entity.StockLevel, error) {
	return r.c.get(ctx, id)
}

// GetByProductID devuelve el primer nivel del producto en orden de lista, o (nil, nil).
func (r *StockLevelRepository) GetByProductID(ctx context.Context, productID string) (*entity.StockLevel, error) {
	return r.c.first(ctx, func(s *entity.StockLevel) bool { return s.ProductID == productID })
}

func (r *StockLevelRepository) List(ctx context.Context) ([]*entity.StockLevel, error) {
	return r.c.list(ctx)
}

// Update aplica el patch y renueva LastUpdated. El patch recalcula AvailableQuantity.
func (r *StockLevelRepository) Update(ctx context.Context, id string, patch entity.StockLevelPatch) (*entity.StockLevel, error) {
	return r.c.update(ctx, id, func(s *entity.StockLevel, now time.Time) {
		patch.Apply(s)
		s.LastUpdated = now
	})
}

// UpdateFunc pide a decide el patch a partir del estado vigente y lo aplica sin soltar el lock,
// de modo que dos ajustes concurrentes no se pisan.
func (r *StockLevelRepository) UpdateFunc(ctx context.Context, id string, decide func(current entity.StockLevel) (entity.StockLevelPatch, error)) (*entity.StockLevel, error) {
	return r.c.updateChecked(ctx, id, func(s *entity.StockLevel, now time.Time) error {
		patch, err := decide(*s)
		if err != nil {
			return err
		}
		patch.Apply(s)
		s.LastUpdated = now
		return nil
	})
}

func (r *StockLevelRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
