package memory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

// SupplierRepository implementación en memoria del puerto SupplierRepository.
type SupplierRepository struct {
	c *collection[entity.Supplier]
}

func newSupplierRepository(e *env) *SupplierRepository {
	return &SupplierRepository{c: newCollection(e, EntitySupplier,
		func(s *entity.Supplier) string { return s.ID },
		func(s *entity.Supplier) *entity.Supplier { cp := s.Clone(); return &cp },
	)}
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error) {
	return r.c.insert(ctx, supplier, func(s *entity.Supplier, id string, now time.Time) {
		s.ID = id
		s.CreatedAt = now
		s.UpdatedAt = now
	})
}

func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return r.c.get(ctx, id)
}

func (r *SupplierRepository) List(ctx context.Context) ([]*entity.Supplier, error) {
	return r.c.list(ctx)
}

// Update aplica el patch (KPIs se mezclan campo a campo) y renueva UpdatedAt.
func (r *SupplierRepository) Update(ctx context.Context, id string, patch entity.SupplierPatch) (*entity.Supplier, error) {
	return r.c.update(ctx, id, func(s *entity.Supplier, now time.Time) {
		patch.Apply(s)
		s.UpdatedAt = now
	})
}

// Delete borrado lógico: el proveedor queda inactive y sigue listándose.
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	_, err := r.c.mutate(ctx, id, ActionDeleted, func(s *entity.Supplier, now time.Time) error {
		s.Status = entity.SupplierStatusInactive
		s.UpdatedAt = now
		return nil
	})
	return err
}
