package usecase

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

// StockLevelUseCase casos de uso de niveles de stock. AvailableQuantity siempre se deriva
// de Quantity - ReservedQuantity.
type StockLevelUseCase struct {
	repo               repository.StockLevelRepository
	defaultWarehouseID string
}

// NewStockLevelUseCase construye el caso de uso.
func NewStockLevelUseCase(repo repository.StockLevelRepository, defaultWarehouseID string) *StockLevelUseCase {
	return &StockLevelUseCase{repo: repo, defaultWarehouseID: defaultWarehouseID}
}

// Create crea un nivel de stock. Sin WarehouseID se usa el almacén por defecto.
func (uc *StockLevelUseCase) Create(ctx context.Context, in dto.CreateStockLevelRequest) (*entity.StockLevel, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	warehouse := in.WarehouseID
	if warehouse == "" {
		warehouse = uc.defaultWarehouseID
	}
	return uc.repo.Create(ctx, &entity.StockLevel{
		ProductID:         in.ProductID,
		WarehouseID:       warehouse,
		Quantity:          in.Quantity,
		ReservedQuantity:  in.ReservedQuantity,
		AvailableQuantity: inventory.AvailableQuantity(in.Quantity, in.ReservedQuantity),
	})
}

func (uc *StockLevelUseCase) GetByID(ctx context.Context, id string) (*entity.StockLevel, error) {
	return uc.repo.GetByID(ctx, id)
}

// GetByProductID nivel del producto; (nil, nil) si el producto no tiene stock registrado.
func (uc *StockLevelUseCase) GetByProductID(ctx context.Context, productID string) (*entity.StockLevel, error) {
	return uc.repo.GetByProductID(ctx, productID)
}

func (uc *StockLevelUseCase) List(ctx context.Context) ([]*entity.StockLevel, error) {
	return uc.repo.List(ctx)
}

// Update aplica los campos enviados; el disponible se recalcula dentro del almacén.
func (uc *StockLevelUseCase) Update(ctx context.Context, id string, in dto.UpdateStockLevelRequest) (*entity.StockLevel, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in.Patch())
}

func (uc *StockLevelUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
