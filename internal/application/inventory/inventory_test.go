package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/memory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	return seededStoreWith(t, memory.Options{})
}

func seededStoreWith(t *testing.T, opts memory.Options) *memory.Store {
	t.Helper()
	store := memory.NewStore(opts)
	store.Seed(&memory.Fixtures{
		Products: []*entity.Product{
			{ID: "p1", SKU: "A", Name: "Monitor", UnitPrice: dec("150"), ReorderPoint: 10, ReorderQuantity: 25},
			{ID: "p2", SKU: "B", Name: "Silla", UnitPrice: dec("249"), ReorderPoint: 5, ReorderQuantity: 10},
			{ID: "p3", SKU: "C", Name: "Papel", UnitPrice: dec("5"), ReorderPoint: 100, ReorderQuantity: 300},
			{ID: "p4", SKU: "D", Name: "Sin reorden", UnitPrice: dec("1"), ReorderPoint: 0, ReorderQuantity: 0},
		},
		StockLevels: []*entity.StockLevel{
			{ID: "s1", ProductID: "p1", WarehouseID: "warehouse-1", Quantity: 8, ReservedQuantity: 2, AvailableQuantity: 6},
			{ID: "s2", ProductID: "p2", WarehouseID: "warehouse-1", Quantity: 1},
			{ID: "s3", ProductID: "p3", WarehouseID: "warehouse-1", Quantity: 420},
		},
	})
	return store
}

// ──────────────────────────────────────────────────────────────────────────────
// Reposición
// ──────────────────────────────────────────────────────────────────────────────

func TestReplenishmentList_PrioridadPorCobertura(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewReplenishmentUseCase(store.Products, store.StockLevels, store.Orders, "supplier-1")

	list, err := uc.GenerateReplenishmentList(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p2", list[0].ProductID, "1/5 de cobertura es más urgente que 8/10")
	assert.Equal(t, 1, list[0].Priority)
	assert.Equal(t, 10, list[0].SuggestedOrderQty)
	assert.Equal(t, "2490", list[0].EstimatedOrderCost.String())
	assert.Equal(t, "p1", list[1].ProductID)
	assert.Equal(t, 8, list[1].CurrentStock)
	assert.Equal(t, 2, list[1].Priority)
}

func TestReplenishmentList_SinAlertasListaVacia(t *testing.T) {
	store := memory.NewStore(memory.Options{})
	uc := inventory.NewReplenishmentUseCase(store.Products, store.StockLevels, store.Orders, "supplier-1")

	list, err := uc.GenerateReplenishmentList(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCreateRestockOrder_OrdenDeCompraPendiente(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewReplenishmentUseCase(store.Products, store.StockLevels, store.Orders, "supplier-1")
	ctx := context.Background()

	o, err := uc.CreateRestockOrder(ctx, dto.RestockOrderRequest{ProductID: "p1"})

	require.NoError(t, err)
	assert.Regexp(t, `^PO-\d+$`, o.OrderNumber)
	assert.Equal(t, entity.OrderTypePurchase, o.Type)
	assert.Equal(t, entity.OrderStatusPending, o.Status)
	assert.Equal(t, "supplier-1", o.SupplierID)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 25, o.Items[0].Quantity)
	assert.True(t, dec("150").Equal(o.Items[0].UnitPrice))
	require.NotNil(t, o.ExpectedDate)
	assert.WithinDuration(t, o.OrderDate.Add(7*24*time.Hour), *o.ExpectedDate, time.Second)

	stored, err := store.Orders.ListByType(ctx, entity.OrderTypePurchase)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCreateRestockOrder_CantidadYProveedorExplicitos(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewReplenishmentUseCase(store.Products, store.StockLevels, store.Orders, "supplier-1")

	o, err := uc.CreateRestockOrder(context.Background(), dto.RestockOrderRequest{ProductID: "p2", Quantity: 3, SupplierID: "sup-9"})

	require.NoError(t, err)
	assert.Equal(t, 3, o.Items[0].Quantity)
	assert.Equal(t, "sup-9", o.SupplierID)
}

func TestCreateRestockOrder_Errores(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewReplenishmentUseCase(store.Products, store.StockLevels, store.Orders, "supplier-1")
	ctx := context.Background()

	_, err := uc.CreateRestockOrder(ctx, dto.RestockOrderRequest{ProductID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.CreateRestockOrder(ctx, dto.RestockOrderRequest{ProductID: "p4"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateRestockOrder(ctx, dto.RestockOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_SumaYRegistraMovimiento(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewStockAdjustmentUseCase(store.StockLevels, store.StockMovements)
	ctx := context.Background()

	res, err := uc.Adjust(ctx, dto.StockAdjustmentRequest{ProductID: "p1", Delta: 5, Reason: "conteo"})

	require.NoError(t, err)
	assert.Equal(t, 13, res.StockLevel.Quantity)
	assert.Equal(t, 11, res.StockLevel.AvailableQuantity)
	assert.Equal(t, entity.MovementTypeAdjustment, res.Movement.Type)
	assert.Equal(t, 5, res.Movement.Quantity)
	assert.Equal(t, "conteo", res.Movement.Notes)

	movements, err := store.StockMovements.ListByProductID(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, movements, 1)
}

func TestAdjust_NoBajaDeCero(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewStockAdjustmentUseCase(store.StockLevels, store.StockMovements)

	res, err := uc.Adjust(context.Background(), dto.StockAdjustmentRequest{ProductID: "p2", Delta: -10})

	require.NoError(t, err)
	assert.Equal(t, 0, res.StockLevel.Quantity)
	assert.Equal(t, -1, res.Movement.Quantity, "el movimiento refleja la variación efectiva")
}

func TestAdjust_Errores(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewStockAdjustmentUseCase(store.StockLevels, store.StockMovements)
	ctx := context.Background()

	_, err := uc.Adjust(ctx, dto.StockAdjustmentRequest{ProductID: "p4", Delta: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Adjust(ctx, dto.StockAdjustmentRequest{ProductID: "p1", Delta: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_ConcurrentesRegistranSuPropiaVariacion(t *testing.T) {
	store := seededStoreWith(t, memory.Options{Latency: 20 * time.Millisecond})
	uc := inventory.NewStockAdjustmentUseCase(store.StockLevels, store.StockMovements)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]*dto.StockAdjustmentResponse, 2)
	errs := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = uc.Adjust(ctx, dto.StockAdjustmentRequest{ProductID: "p1", Delta: 5})
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, 5, results[i].Movement.Quantity, "cada ajuste registra solo su propio delta")
	}
	level, err := store.StockLevels.GetByProductID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 18, level.Quantity)

	movements, err := store.StockMovements.ListByProductID(ctx, "p1")
	require.NoError(t, err)
	total := 0
	for _, m := range movements {
		total += m.Quantity
	}
	assert.Equal(t, 10, total, "la suma de movimientos cuadra con la variación del nivel")
}
