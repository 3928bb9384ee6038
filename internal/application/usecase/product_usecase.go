package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventario-dashboard/pkg/textutil"
)

// ProductUseCase casos de uso CRUD para productos. Al crear un producto se crea también su
// nivel de stock en cero en el almacén por defecto.
type ProductUseCase struct {
	repo               repository.ProductRepository
	stockRepo          repository.StockLevelRepository
	defaultWarehouseID string
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, stockRepo repository.StockLevelRepository, defaultWarehouseID string) *ProductUseCase {
	return &ProductUseCase{repo: repo, stockRepo: stockRepo, defaultWarehouseID: defaultWarehouseID}
}

// Create crea el producto y su StockLevel inicial (quantity 0). El SKU no puede repetirse.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := dto.NonNegative("unitPrice", in.UnitPrice); err != nil {
		return nil, err
	}
	if err := uc.ensureUniqueSKU(ctx, in.SKU, ""); err != nil {
		return nil, err
	}
	product, err := uc.repo.Create(ctx, &entity.Product{
		SKU:             strings.TrimSpace(in.SKU),
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		Category:        strings.TrimSpace(in.Category),
		UnitPrice:       in.UnitPrice,
		Unit:            in.Unit,
		ReorderPoint:    in.ReorderPoint,
		ReorderQuantity: in.ReorderQuantity,
	})
	if err != nil {
		return nil, err
	}
	level, err := uc.stockRepo.Create(ctx, &entity.StockLevel{
		ProductID:   product.ID,
		WarehouseID: uc.defaultWarehouseID,
	})
	if err != nil {
		return nil, fmt.Errorf("stock inicial de %s: %w", product.ID, err)
	}
	return &dto.CreateProductResponse{Product: product, StockLevel: level}, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.repo.GetByID(ctx, id)
}

// List devuelve los productos (más recientes primero) que cumplen el filtro.
func (uc *ProductUseCase) List(ctx context.Context, f dto.ProductFilter) ([]*entity.Product, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if !textutil.ContainsFold(f.Search, p.Name, p.SKU) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Categories categorías distintas del catálogo, en orden alfabético.
func (uc *ProductUseCase) Categories(ctx context.Context) ([]string, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	cats := make([]string, 0, len(products))
	for _, p := range products {
		cats = append(cats, p.Category)
	}
	return textutil.Distinct(cats), nil
}

// Update aplica los campos enviados. El stock no se modifica desde aquí.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.UnitPrice != nil {
		if err := dto.NonNegative("unitPrice", *in.UnitPrice); err != nil {
			return nil, err
		}
	}
	if in.SKU != nil {
		if err := uc.ensureUniqueSKU(ctx, *in.SKU, id); err != nil {
			return nil, err
		}
	}
	return uc.repo.Update(ctx, id, in.Patch())
}

// Delete elimina el producto. Sus niveles de stock y movimientos se conservan.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) ensureUniqueSKU(ctx context.Context, sku, exceptID string) error {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return err
	}
	want := textutil.Fold(strings.TrimSpace(sku))
	for _, p := range products {
		if p.ID != exceptID && textutil.Fold(p.SKU) == want {
			return fmt.Errorf("sku %s: %w", sku, domain.ErrDuplicate)
		}
	}
	return nil
}
