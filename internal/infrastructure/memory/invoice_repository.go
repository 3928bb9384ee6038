package memory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepository)(nil)

// InvoiceRepository implementación en memoria del puerto InvoiceRepository.
type InvoiceRepository struct {
	c *collection[entity.Invoice]
}

func newInvoiceRepository(e *env) *InvoiceRepository {
	return &InvoiceRepository{c: newCollection(e, EntityInvoice,
		func(inv *entity.Invoice) string { return inv.ID },
		func(inv *entity.Invoice) *entity.Invoice { cp := inv.Clone(); return &cp },
	)}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) (*entity.Invoice, error) {
	return r.c.insert(ctx, invoice, func(inv *entity.Invoice, id string, now time.Time) {
		inv.ID = id
		inv.CreatedAt = now
		inv.UpdatedAt = now
	})
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.c.get(ctx, id)
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*entity.Invoice, error) {
	return r.c.list(ctx)
}

// Update aplica el patch. Los totales no se recalculan.
func (r *InvoiceRepository) Update(ctx context.Context, id string, patch entity.InvoicePatch) (*entity.Invoice, error) {
	return r.c.update(ctx, id, func(inv *entity.Invoice, now time.Time) {
		patch.Apply(inv)
		inv.UpdatedAt = now
	})
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
