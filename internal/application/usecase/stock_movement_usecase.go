package usecase

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

// StockMovementUseCase registro de movimientos. Es informativo: no modifica StockLevel.
type StockMovementUseCase struct {
	repo repository.StockMovementRepository
}

// NewStockMovementUseCase construye el caso de uso.
func NewStockMovementUseCase(repo repository.StockMovementRepository) *StockMovementUseCase {
	return &StockMovementUseCase{repo: repo}
}

// Create registra un movimiento con marca de tiempo actual.
func (uc *StockMovementUseCase) Create(ctx context.Context, in dto.CreateStockMovementRequest) (*entity.StockMovement, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, &entity.StockMovement{
		ProductID:    in.ProductID,
		Type:         in.Type,
		Quantity:     in.Quantity,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		Reference:    in.Reference,
		Notes:        in.Notes,
	})
}

func (uc *StockMovementUseCase) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	return uc.repo.GetByID(ctx, id)
}

// List movimientos más recientes primero, opcionalmente por producto y/o tipo.
func (uc *StockMovementUseCase) List(ctx context.Context, f dto.StockMovementFilter) ([]*entity.StockMovement, error) {
	if err := dto.Validate(f); err != nil {
		return nil, err
	}
	var (
		movements []*entity.StockMovement
		err       error
	)
	if f.ProductID != "" {
		movements, err = uc.repo.ListByProductID(ctx, f.ProductID)
	} else {
		movements, err = uc.repo.List(ctx)
	}
	if err != nil || f.Type == "" {
		return movements, err
	}
	out := make([]*entity.StockMovement, 0, len(movements))
	for _, m := range movements {
		if m.Type == f.Type {
			out = append(out, m)
		}
	}
	return out, nil
}

// ListByProductID movimientos de un producto.
func (uc *StockMovementUseCase) ListByProductID(ctx context.Context, productID string) ([]*entity.StockMovement, error) {
	return uc.repo.ListByProductID(ctx, productID)
}

func (uc *StockMovementUseCase) Update(ctx context.Context, id string, in dto.UpdateStockMovementRequest) (*entity.StockMovement, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in.Patch())
}

func (uc *StockMovementUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
