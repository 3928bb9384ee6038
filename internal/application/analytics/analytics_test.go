package analytics_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/memory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func reposFor(store *memory.Store) analytics.Repos {
	return analytics.Repos{
		Products:       store.Products,
		StockLevels:    store.StockLevels,
		Orders:         store.Orders,
		StockMovements: store.StockMovements,
	}
}

// fixtureStore 3 productos (uno bajo, uno sin stock), 7 órdenes y 12 movimientos.
func fixtureStore(t *testing.T) *memory.Store {
	t.Helper()
	f := &memory.Fixtures{
		Products: []*entity.Product{
			{ID: "p1", SKU: "A", Name: "Monitor", Category: "Electrónica", UnitPrice: dec("100"), ReorderPoint: 10, ReorderQuantity: 20},
			{ID: "p2", SKU: "B", Name: "Papel", Category: "Oficina", UnitPrice: dec("2.5"), ReorderPoint: 50, ReorderQuantity: 100},
			{ID: "p3", SKU: "C", Name: "Escoba", Category: "Limpieza", UnitPrice: dec("9"), ReorderPoint: 5},
		},
		StockLevels: []*entity.StockLevel{
			{ID: "s1", ProductID: "p1", Quantity: 8},
			{ID: "s2", ProductID: "p2", Quantity: 200},
			{ID: "s9", ProductID: "ghost", Quantity: 1000},
		},
	}
	statuses := []string{
		entity.OrderStatusPending, entity.OrderStatusPending, entity.OrderStatusConfirmed,
		entity.OrderStatusCompleted, entity.OrderStatusShipped, entity.OrderStatusCompleted, entity.OrderStatusPending,
	}
	for i, st := range statuses {
		typ := entity.OrderTypePurchase
		if i%2 == 1 {
			typ = entity.OrderTypeSales
		}
		f.Orders = append(f.Orders, &entity.Order{
			ID: fmt.Sprintf("o%d", i), Type: typ, Status: st,
			Items: []entity.OrderItem{{ProductID: "p1", Quantity: 1, UnitPrice: dec("10")}},
		})
	}
	for i := 0; i < 12; i++ {
		typ := entity.MovementTypeReceipt
		if i%3 == 0 {
			typ = entity.MovementTypeShipment
		}
		f.StockMovements = append(f.StockMovements, &entity.StockMovement{
			ID: fmt.Sprintf("m%02d", i), ProductID: "p1", Type: typ, Quantity: 1,
			Timestamp: time.Date(2024, 3, 12-i, 0, 0, 0, 0, time.UTC),
		})
	}
	store := memory.NewStore(memory.Options{})
	store.Seed(f)
	return store
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_GetSummary(t *testing.T) {
	uc := analytics.NewDashboardUseCase(reposFor(fixtureStore(t)))

	sum, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, sum.TotalProducts)
	assert.Equal(t, 1, sum.LowStockCount, "p3 no tiene stock y no cuenta como bajo")
	require.Len(t, sum.LowStockAlerts, 1)
	assert.Equal(t, "p1", sum.LowStockAlerts[0].ProductID)
	assert.Equal(t, 8, sum.LowStockAlerts[0].CurrentStock)
	assert.Equal(t, 5, sum.ActiveOrders)
	assert.Equal(t, "1300", sum.TotalInventoryValue.String(), "el nivel huérfano aporta 0")
	require.Len(t, sum.RecentOrders, 5)
	assert.Equal(t, "o0", sum.RecentOrders[0].ID)
}

func TestDashboard_AlmacenVacio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(reposFor(memory.NewStore(memory.Options{})))

	sum, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Zero(t, sum.TotalProducts)
	assert.True(t, sum.TotalInventoryValue.IsZero())
	assert.Empty(t, sum.RecentOrders)
}

func TestDashboard_ContextoCancelado(t *testing.T) {
	uc := analytics.NewDashboardUseCase(reposFor(memory.NewStore(memory.Options{Latency: time.Hour})))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.GetSummary(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestReports_Inventory(t *testing.T) {
	uc := analytics.NewReportsUseCase(reposFor(fixtureStore(t)))

	rep, err := uc.Inventory(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, rep.TotalProducts)
	assert.Equal(t, 1208, rep.TotalStockQuantity)
	assert.Equal(t, 3, rep.CategoriesCount)
	assert.Equal(t, 1, rep.LowStockCount)
}

func TestReports_Orders(t *testing.T) {
	uc := analytics.NewReportsUseCase(reposFor(fixtureStore(t)))

	rep, err := uc.Orders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, rep.Purchase.Count)
	assert.Equal(t, 3, rep.Sales.Count)
	assert.Equal(t, "40", rep.Purchase.Value.String())
	require.Len(t, rep.Overall, 4)
	assert.Equal(t, entity.OrderStatusPending, rep.Overall[0].Status)
	assert.Equal(t, 3, rep.Overall[0].Count)
	assert.Equal(t, "42.86", rep.Overall[0].Percentage.StringFixed(2))
}

func TestReports_OrdersSinOrdenes(t *testing.T) {
	uc := analytics.NewReportsUseCase(reposFor(memory.NewStore(memory.Options{})))

	rep, err := uc.Orders(context.Background())

	require.NoError(t, err)
	for _, b := range rep.Overall {
		assert.Zero(t, b.Count)
		assert.True(t, b.Percentage.IsZero())
	}
}

func TestReports_StockMovements(t *testing.T) {
	uc := analytics.NewReportsUseCase(reposFor(fixtureStore(t)))

	rep, err := uc.StockMovements(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, rep.TotalMovements)
	assert.Equal(t, 4, rep.ByType[entity.MovementTypeShipment])
	assert.Equal(t, 8, rep.ByType[entity.MovementTypeReceipt])
	assert.Equal(t, 0, rep.ByType[entity.MovementTypeTransfer])
	require.Len(t, rep.Recent, 10)
	assert.Equal(t, "m00", rep.Recent[0].ID)
}

func TestReports_Valuation(t *testing.T) {
	uc := analytics.NewReportsUseCase(reposFor(fixtureStore(t)))

	rep, err := uc.Valuation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1300", rep.TotalValue.String())
	require.Len(t, rep.CategoryDistribution, 3)
	assert.Equal(t, "Electrónica", rep.CategoryDistribution[0].Category)
	assert.Equal(t, "61.54", rep.CategoryDistribution[0].Percentage.StringFixed(2))
	assert.Equal(t, "Limpieza", rep.CategoryDistribution[2].Category)
	assert.True(t, rep.CategoryDistribution[2].Value.IsZero())
	require.Len(t, rep.TopProducts, 3)
	assert.Equal(t, "p1", rep.TopProducts[0].ProductID)
}
