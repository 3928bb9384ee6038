package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
)

const (
	reportRecentMovements = 10
	reportTopProducts     = 10
)

// ReportsUseCase reportes de inventario, órdenes, movimientos y valorización.
type ReportsUseCase struct {
	repos Repos
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(repos Repos) *ReportsUseCase {
	return &ReportsUseCase{repos: repos}
}

// Inventory totales de catálogo y stock, más los productos con stock bajo.
func (uc *ReportsUseCase) Inventory(ctx context.Context) (*dto.InventoryReportDTO, error) {
	snap, err := uc.repos.load(ctx, need{products: true, levels: true})
	if err != nil {
		return nil, fmt.Errorf("reporte de inventario: %w", err)
	}
	low := lowStockAlerts(snap.products, snap.levels)
	return &dto.InventoryReportDTO{
		TotalProducts:      len(snap.products),
		TotalStockQuantity: inventory.TotalStockQuantity(snap.levels),
		CategoriesCount:    len(inventory.UniqueCategories(snap.products)),
		LowStockCount:      len(low),
		LowStockProducts:   low,
	}, nil
}

// Orders conteo, valor e histograma de estados por tipo de orden y global.
func (uc *ReportsUseCase) Orders(ctx context.Context) (*dto.OrdersReportDTO, error) {
	snap, err := uc.repos.load(ctx, need{orders: true})
	if err != nil {
		return nil, fmt.Errorf("reporte de órdenes: %w", err)
	}
	return &dto.OrdersReportDTO{
		Purchase: orderTypeReport(inventory.FilterOrdersByType(snap.orders, entity.OrderTypePurchase)),
		Sales:    orderTypeReport(inventory.FilterOrdersByType(snap.orders, entity.OrderTypeSales)),
		Overall:  statusBuckets(snap.orders),
	}, nil
}

func orderTypeReport(orders []*entity.Order) dto.OrderTypeReportDTO {
	return dto.OrderTypeReportDTO{
		Count:    len(orders),
		Value:    inventory.Round2(inventory.OrdersValue(orders)),
		Statuses: statusBuckets(orders),
	}
}

// statusBuckets histograma en el orden canónico de estados.
func statusBuckets(orders []*entity.Order) []dto.StatusBucketDTO {
	h := inventory.OrderStatusHistogram(orders, entity.OrderStatuses)
	out := make([]dto.StatusBucketDTO, 0, len(entity.OrderStatuses))
	for _, st := range entity.OrderStatuses {
		out = append(out, dto.StatusBucketDTO{
			Status:     st,
			Count:      h[st].Count,
			Percentage: inventory.Round2(h[st].Percentage),
		})
	}
	return out
}

// StockMovements conteo por tipo y los 10 movimientos más recientes.
func (uc *ReportsUseCase) StockMovements(ctx context.Context) (*dto.MovementsReportDTO, error) {
	snap, err := uc.repos.load(ctx, need{movements: true})
	if err != nil {
		return nil, fmt.Errorf("reporte de movimientos: %w", err)
	}
	byType := map[string]int{
		entity.MovementTypeReceipt:    0,
		entity.MovementTypeShipment:   0,
		entity.MovementTypeTransfer:   0,
		entity.MovementTypeAdjustment: 0,
	}
	for _, m := range snap.movements {
		byType[m.Type]++
	}
	recent := snap.movements
	if len(recent) > reportRecentMovements {
		recent = recent[:reportRecentMovements]
	}
	return &dto.MovementsReportDTO{
		TotalMovements: len(snap.movements),
		ByType:         byType,
		Recent:         recent,
	}, nil
}

// Valuation valor total, distribución por categoría (mayor valor primero) y top 10 productos.
func (uc *ReportsUseCase) Valuation(ctx context.Context) (*dto.ValuationReportDTO, error) {
	snap, err := uc.repos.load(ctx, need{products: true, levels: true})
	if err != nil {
		return nil, fmt.Errorf("reporte de valorización: %w", err)
	}

	dist := inventory.CategoryValueDistribution(snap.products, snap.levels)
	share := inventory.CategoryShare(dist)
	categories := make([]dto.CategoryValueDTO, 0, len(dist))
	for cat, v := range dist {
		categories = append(categories, dto.CategoryValueDTO{
			Category:   cat,
			Value:      inventory.Round2(v),
			Percentage: inventory.Round2(share[cat]),
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		if c := categories[i].Value.Cmp(categories[j].Value); c != 0 {
			return c > 0
		}
		return categories[i].Category < categories[j].Category
	})

	top := inventory.TopValueProducts(snap.products, snap.levels, reportTopProducts)
	products := make([]dto.ProductValueDTO, 0, len(top))
	for _, pv := range top {
		products = append(products, dto.ProductValueDTO{
			ProductID:   pv.Product.ID,
			SKU:         pv.Product.SKU,
			ProductName: pv.Product.Name,
			Quantity:    pv.Quantity,
			UnitPrice:   pv.Product.UnitPrice,
			Value:       inventory.Round2(pv.Value),
		})
	}

	return &dto.ValuationReportDTO{
		TotalValue:           inventory.Round2(inventory.TotalInventoryValue(snap.products, snap.levels)),
		CategoryDistribution: categories,
		TopProducts:          products,
	}, nil
}
