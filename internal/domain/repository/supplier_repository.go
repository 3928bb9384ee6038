package repository

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para proveedores.
// Delete es lógico: marca el proveedor como inactive.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error)
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
	Update(ctx context.Context, id string, patch entity.SupplierPatch) (*entity.Supplier, error)
	Delete(ctx context.Context, id string) error
}
