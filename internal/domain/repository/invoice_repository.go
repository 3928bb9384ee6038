package repository

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) (*entity.Invoice, error)
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context) ([]*entity.Invoice, error)
	Update(ctx context.Context, id string, patch entity.InvoicePatch) (*entity.Invoice, error)
	Delete(ctx context.Context, id string) error
}
