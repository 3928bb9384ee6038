package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

// StockAdjustmentUseCase ajuste manual de cantidades (conteos, mermas).
type StockAdjustmentUseCase struct {
	levelRepo    repository.StockLevelRepository
	movementRepo repository.StockMovementRepository
}

// NewStockAdjustmentUseCase construye el caso de uso.
func NewStockAdjustmentUseCase(levelRepo repository.StockLevelRepository, movementRepo repository.StockMovementRepository) *StockAdjustmentUseCase {
	return &StockAdjustmentUseCase{levelRepo: levelRepo, movementRepo: movementRepo}
}

// Adjust suma delta a la cantidad del producto (nunca por debajo de cero), recalcula el
// disponible y registra un movimiento adjustment con la variación efectiva.
func (uc *StockAdjustmentUseCase) Adjust(ctx context.Context, in dto.StockAdjustmentRequest) (*dto.StockAdjustmentResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	level, err := uc.levelRepo.GetByProductID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return nil, fmt.Errorf("stock del producto %s: %w", in.ProductID, domain.ErrNotFound)
	}

	// La variación efectiva se mide contra la cantidad vista dentro del lock, no contra level.
	var before int
	delta := in.Delta
	updated, err := uc.levelRepo.UpdateFunc(ctx, level.ID, func(current entity.StockLevel) (entity.StockLevelPatch, error) {
		before = current.Quantity
		return entity.StockLevelPatch{QuantityDelta: &delta}, nil
	})
	if err != nil {
		return nil, err
	}

	movement, err := uc.movementRepo.Create(ctx, &entity.StockMovement{
		ProductID:  in.ProductID,
		Type:       entity.MovementTypeAdjustment,
		Quantity:   updated.Quantity - before,
		ToLocation: updated.WarehouseID,
		Reference:  "AJUSTE",
		Notes:      in.Reason,
	})
	if err != nil {
		return nil, fmt.Errorf("registrar ajuste: %w", err)
	}
	return &dto.StockAdjustmentResponse{StockLevel: updated, Movement: movement}, nil
}
