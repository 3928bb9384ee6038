package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

// OrderUseCase casos de uso de órdenes de compra y venta.
type OrderUseCase struct {
	repo repository.OrderRepository
	now  func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, now: time.Now}
}

// OrderNumberPrefix prefijo del número de orden según el tipo.
func OrderNumberPrefix(orderType string) string {
	if orderType == entity.OrderTypeSales {
		return "SO-"
	}
	return "PO-"
}

// NewOrderNumber número por defecto: prefijo + timestamp en milisegundos.
func NewOrderNumber(orderType string, now time.Time) string {
	return OrderNumberPrefix(orderType) + strconv.FormatInt(now.UnixMilli(), 10)
}

// Create crea la orden. OrderNumber y Status toman valores por defecto si se omiten.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*entity.Order, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	for i, it := range in.Items {
		if err := dto.NonNegative(fmt.Sprintf("items[%d].unitPrice", i), it.UnitPrice); err != nil {
			return nil, err
		}
	}
	now := uc.now()
	order := &entity.Order{
		OrderNumber:  in.OrderNumber,
		Type:         in.Type,
		Status:       in.Status,
		SupplierID:   in.SupplierID,
		CustomerID:   in.CustomerID,
		Items:        dto.OrderItems(in.Items),
		ExpectedDate: in.ExpectedDate,
		Notes:        in.Notes,
	}
	if order.OrderNumber == "" {
		order.OrderNumber = NewOrderNumber(in.Type, now)
	}
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	if in.OrderDate != nil {
		order.OrderDate = *in.OrderDate
	}
	return uc.repo.Create(ctx, order)
}

func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return uc.repo.GetByID(ctx, id)
}

// List órdenes más recientes primero, filtradas por tipo y/o estado.
func (uc *OrderUseCase) List(ctx context.Context, f dto.OrderFilter) ([]*entity.Order, error) {
	if err := dto.Validate(f); err != nil {
		return nil, err
	}
	var (
		orders []*entity.Order
		err    error
	)
	if f.Type != "" {
		orders, err = uc.repo.ListByType(ctx, f.Type)
	} else {
		orders, err = uc.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	if f.Status == "" {
		return orders, nil
	}
	out := make([]*entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == f.Status {
			out = append(out, o)
		}
	}
	return out, nil
}

// ListByType órdenes de compra o de venta.
func (uc *OrderUseCase) ListByType(ctx context.Context, orderType string) ([]*entity.Order, error) {
	return uc.List(ctx, dto.OrderFilter{Type: orderType})
}

// Update aplica los campos enviados. El almacén no impone la progresión de estados.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*entity.Order, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in.Patch())
}

// AdvanceStatus mueve la orden al siguiente estado (pending → confirmed → shipped → completed).
// Una orden completada no puede avanzar.
func (uc *OrderUseCase) AdvanceStatus(ctx context.Context, id string) (*entity.Order, error) {
	return uc.repo.UpdateFunc(ctx, id, func(order entity.Order) (entity.OrderPatch, error) {
		next, ok := nextStatus(order.Status)
		if !ok {
			return entity.OrderPatch{}, fmt.Errorf("%w: la orden %s en estado %q no puede avanzar", domain.ErrInvalidInput, order.OrderNumber, order.Status)
		}
		return entity.OrderPatch{Status: &next}, nil
	})
}

func nextStatus(current string) (string, bool) {
	for i, st := range entity.OrderStatuses {
		if st == current && i+1 < len(entity.OrderStatuses) {
			return entity.OrderStatuses[i+1], true
		}
	}
	return "", false
}

func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
