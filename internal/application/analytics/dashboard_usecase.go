// Package analytics contiene los casos de uso del dashboard y de los reportes:
// leen colecciones del almacén y delegan los cálculos en domain/inventory.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
)

const dashboardRecentOrders = 5 // órdenes en el widget del dashboard

// DashboardUseCase genera el resumen de la página principal.
type DashboardUseCase struct {
	repos Repos
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repos Repos) *DashboardUseCase {
	return &DashboardUseCase{repos: repos}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres lecturas en paralelo (productos, niveles, órdenes) y luego:
//   - LowStockProducts → alertas y conteo
//   - TotalInventoryValue
//   - ActiveOrders y las 5 órdenes más recientes
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	snap, err := uc.repos.load(ctx, need{products: true, levels: true, orders: true})
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	alerts := lowStockAlerts(snap.products, snap.levels)
	recent := snap.orders
	if len(recent) > dashboardRecentOrders {
		recent = recent[:dashboardRecentOrders]
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:       len(snap.products),
		LowStockCount:       len(alerts),
		ActiveOrders:        inventory.ActiveOrders(snap.orders),
		TotalInventoryValue: inventory.Round2(inventory.TotalInventoryValue(snap.products, snap.levels)),
		LowStockAlerts:      alerts,
		RecentOrders:        recent,
	}, nil
}

// lowStockAlerts productos en o bajo su punto de reorden con su cantidad actual.
func lowStockAlerts(products []*entity.Product, levels []*entity.StockLevel) []dto.LowStockAlertDTO {
	low := inventory.LowStockProducts(products, levels)
	qty := make(map[string]int, len(levels))
	for i := len(levels) - 1; i >= 0; i-- { // el primero de la lista gana
		qty[levels[i].ProductID] = levels[i].Quantity
	}
	out := make([]dto.LowStockAlertDTO, 0, len(low))
	for _, p := range low {
		out = append(out, dto.LowStockAlertDTO{
			ProductID:       p.ID,
			SKU:             p.SKU,
			ProductName:     p.Name,
			Category:        p.Category,
			CurrentStock:    qty[p.ID],
			ReorderPoint:    p.ReorderPoint,
			ReorderQuantity: p.ReorderQuantity,
		})
	}
	return out
}
