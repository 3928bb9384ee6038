// Package inventory casos de uso operativos del inventario: reposición y ajustes de stock.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

const restockLeadTime = 7 * 24 * time.Hour // fecha esperada de una orden de reposición

// ReplenishmentUseCase lista de reposición y creación de órdenes de compra desde alertas de stock bajo.
type ReplenishmentUseCase struct {
	productRepo       repository.ProductRepository
	levelRepo         repository.StockLevelRepository
	orderRepo         repository.OrderRepository
	defaultSupplierID string
	now               func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(
	productRepo repository.ProductRepository,
	levelRepo repository.StockLevelRepository,
	orderRepo repository.OrderRepository,
	defaultSupplierID string,
) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{
		productRepo:       productRepo,
		levelRepo:         levelRepo,
		orderRepo:         orderRepo,
		defaultSupplierID: defaultSupplierID,
		now:               time.Now,
	}
}

// GenerateReplenishmentList devuelve los productos en o bajo su punto de reorden con la cantidad
// sugerida (ReorderQuantity) y su costo estimado a precio de lista.
// Prioridad: menor cobertura (stock / punto de reorden) primero; empate, mayor déficit.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	var (
		products []*entity.Product
		levels   []*entity.StockLevel
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = uc.productRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		levels, err = uc.levelRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	low := domaininv.LowStockProducts(products, levels)
	if len(low) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}, nil
	}
	current := make(map[string]int, len(levels))
	for i := len(levels) - 1; i >= 0; i-- {
		current[levels[i].ProductID] = levels[i].Quantity
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(low))
	for _, p := range low {
		qty := p.ReorderQuantity
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          p.ID,
			SKU:                p.SKU,
			ProductName:        p.Name,
			CurrentStock:       current[p.ID],
			ReorderPoint:       p.ReorderPoint,
			SuggestedOrderQty:  qty,
			UnitPrice:          p.UnitPrice,
			EstimatedOrderCost: domaininv.Round2(p.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		ca, cb := coverage(a), coverage(b)
		if !ca.Equal(cb) {
			return ca.LessThan(cb)
		}
		return a.ReorderPoint-a.CurrentStock > b.ReorderPoint-b.CurrentStock
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}

// coverage stock actual / punto de reorden (0 cuando el punto de reorden es 0).
func coverage(s dto.ReplenishmentSuggestionDTO) decimal.Decimal {
	if s.ReorderPoint <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.CurrentStock)).Div(decimal.NewFromInt(int64(s.ReorderPoint)))
}

// CreateRestockOrder crea una orden de compra pending por el producto indicado.
// Sin cantidad se usa ReorderQuantity; sin proveedor, el proveedor por defecto.
// La orden se espera en 7 días.
func (uc *ReplenishmentUseCase) CreateRestockOrder(ctx context.Context, in dto.RestockOrderRequest) (*entity.Order, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	qty := in.Quantity
	if qty == 0 {
		qty = product.ReorderQuantity
	}
	if qty <= 0 {
		return nil, fmt.Errorf("%w: el producto %s no tiene cantidad de reorden", domain.ErrInvalidInput, product.SKU)
	}
	supplierID := in.SupplierID
	if supplierID == "" {
		supplierID = uc.defaultSupplierID
	}

	now := uc.now()
	expected := now.Add(restockLeadTime)
	return uc.orderRepo.Create(ctx, &entity.Order{
		OrderNumber: "PO-" + strconv.FormatInt(now.UnixMilli(), 10),
		Type:        entity.OrderTypePurchase,
		Status:      entity.OrderStatusPending,
		SupplierID:  supplierID,
		Items: []entity.OrderItem{{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    qty,
			UnitPrice:   product.UnitPrice,
		}},
		OrderDate:    now,
		ExpectedDate: &expected,
		Notes:        "Reposición automática por stock bajo",
	})
}
