package memory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación en memoria del puerto ProductRepository.
type ProductRepository struct {
	c *collection[entity.Product]
}

func newProductRepository(e *env) *ProductRepository {
	return &ProductRepository{c: newCollection(e, EntityProduct,
		func(p *entity.Product) string { return p.ID },
		func(p *entity.Product) *entity.Product { cp := *p; return &cp },
	)}
}

// Create asigna id y marcas de tiempo y antepone el producto.
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	return r.c.insert(ctx, product, func(p *entity.Product, id string, now time.Time) {
		p.ID = id
		p.CreatedAt = now
		p.UpdatedAt = now
	})
}

// GetByID obtiene un producto por ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.c.get(ctx, id)
}

// List devuelve todos los productos, del más reciente al más antiguo.
func (r *ProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	return r.c.list(ctx)
}

// Update aplica el patch y renueva UpdatedAt.
func (r *ProductRepository) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	return r.c.update(ctx, id, func(p *entity.Product, now time.Time) {
		patch.Apply(p)
		p.UpdatedAt = now
	})
}

// Delete elimina el producto. No borra en cascada sus niveles ni movimientos.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
