package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/inventario-dashboard/internal/application/billing"
	"github.com/jhoicas/inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/inventario-dashboard/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/inventario-dashboard/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/inventario-dashboard/pkg/jwt"
)

// newAPI monta el router completo sobre un almacén sembrado con los fixtures embebidos.
func newAPI(t *testing.T, jwtSecret string) *fiber.App {
	t.Helper()
	store := memory.NewStore(memory.Options{})
	fx, err := memory.LoadFixtures("")
	require.NoError(t, err)
	store.Seed(fx)

	repos := appanalytics.Repos{
		Products:       store.Products,
		StockLevels:    store.StockLevels,
		Orders:         store.Orders,
		StockMovements: store.StockMovements,
	}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:       usecase.NewProductUseCase(store.Products, store.StockLevels, "warehouse-1"),
		StockLevelUC:    usecase.NewStockLevelUseCase(store.StockLevels, "warehouse-1"),
		OrderUC:         usecase.NewOrderUseCase(store.Orders),
		StockMovementUC: usecase.NewStockMovementUseCase(store.StockMovements),
		SupplierUC:      usecase.NewSupplierUseCase(store.Suppliers),
		InvoiceUC:       billing.NewInvoiceUseCase(store.Invoices),
		InvoicePDF:      billing.NewPDFUseCase(store.Invoices, infrapdf.NewMarotoPDFGenerator(infrapdf.Issuer{Name: "Test"})),
		DashboardUC:     appanalytics.NewDashboardUseCase(repos),
		ReportsUC:       appanalytics.NewReportsUseCase(repos),
		Replenishment:   inventory.NewReplenishmentUseCase(store.Products, store.StockLevels, store.Orders, "sup-001"),
		Adjustment:      inventory.NewStockAdjustmentUseCase(store.StockLevels, store.StockMovements),
		JWTSecret:       jwtSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body, auth string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ListarProductos(t *testing.T) {
	app := newAPI(t, "")

	resp := call(t, app, http.MethodGet, "/api/products", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	all := decode[[]map[string]any](t, resp)
	assert.Len(t, all, 6)

	resp = call(t, app, http.MethodGet, "/api/products?category=Oficina", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]map[string]any](t, resp), 2)
}

func TestRouter_ProductoInexistente_Retorna404(t *testing.T) {
	app := newAPI(t, "")

	resp := call(t, app, http.MethodGet, "/api/products/p-999", "", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestRouter_CrearProducto_ValidacionYDuplicado(t *testing.T) {
	app := newAPI(t, "")

	resp := call(t, app, http.MethodPost, "/api/products", `{"name":"Sin SKU","category":"X"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/products", `{"sku":"elec-001","name":"Otro","category":"Electrónica","unitPrice":"1"}`, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/products", `{bad json`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/products", `{"sku":"NEW-1","name":"Nuevo","category":"Oficina","unitPrice":"2.5","reorderPoint":5}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[map[string]map[string]any](t, resp)
	assert.Equal(t, "NEW-1", created["product"]["sku"])
	assert.Equal(t, float64(0), created["stockLevel"]["quantity"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes, inventario y tablero
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_AvanzarOrden(t *testing.T) {
	app := newAPI(t, "")

	resp := call(t, app, http.MethodPost, "/api/orders/o-001/advance", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "confirmed", decode[map[string]any](t, resp)["status"])

	resp = call(t, app, http.MethodPost, "/api/orders/o-004/advance", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "una orden completada no avanza")
}

func TestRouter_AjusteDeStock(t *testing.T) {
	app := newAPI(t, "")

	resp := call(t, app, http.MethodPost, "/api/inventory/adjustments", `{"productId":"p-001","delta":5,"reason":"conteo"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[map[string]map[string]any](t, resp)
	assert.Equal(t, float64(13), out["stockLevel"]["quantity"])
	assert.Equal(t, "adjustment", out["movement"]["type"])

	resp = call(t, app, http.MethodPost, "/api/inventory/adjustments", `{"productId":"p-001","delta":0}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/inventory/adjustments", `{"productId":"nope","delta":1}`, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_ResumenDelTableroYReportes(t *testing.T) {
	app := newAPI(t, "")

	resp := call(t, app, http.MethodGet, "/api/dashboard/summary", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sum := decode[map[string]any](t, resp)
	assert.Equal(t, float64(6), sum["totalProducts"])
	assert.Equal(t, float64(4), sum["activeOrders"])

	for _, path := range []string{
		"/api/reports/inventory",
		"/api/reports/orders",
		"/api/reports/movements",
		"/api/reports/valuation",
		"/api/inventory/replenishment-list",
		"/api/suppliers/statistics",
		"/api/suppliers/categories",
		"/api/stock-levels?productId=p-002",
	} {
		resp := call(t, app, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		resp.Body.Close()
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Proveedores y facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ProveedoresPaginados(t *testing.T) {
	app := newAPI(t, "")

	resp := call(t, app, http.MethodGet, "/api/suppliers?page=1&limit=2", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[map[string]any](t, resp)
	assert.Equal(t, float64(4), page["total"])
	assert.Equal(t, float64(2), page["totalPages"])
	assert.Len(t, page["data"], 2)

	resp = call(t, app, http.MethodGet, "/api/suppliers?status=archived", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_DescargarPDFDeFactura(t *testing.T) {
	app := newAPI(t, "")

	resp := call(t, app, http.MethodGet, "/api/invoices/inv-001/pdf", "", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "factura_INV-482913.pdf")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

func TestRouter_ListarFacturasConResumen(t *testing.T) {
	app := newAPI(t, "")

	resp := call(t, app, http.MethodGet, "/api/invoices", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[map[string]any](t, resp)
	assert.Len(t, out["items"], 3)
	summary, ok := out["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), summary["count"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación en el router
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ConJWT_LecturaYEscrituraPorRol(t *testing.T) {
	app := newAPI(t, authSecret)

	resp := call(t, app, http.MethodGet, "/api/products", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "sin token")

	viewer := bearer(t, pkgjwt.RoleViewer, 60)
	resp = call(t, app, http.MethodGet, "/api/products", "", viewer)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "viewer puede leer")

	resp = call(t, app, http.MethodDelete, "/api/products/p-001", "", viewer)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "viewer no puede escribir")

	resp = call(t, app, http.MethodDelete, "/api/products/p-001", "", bearer(t, pkgjwt.RoleManager, 60))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
