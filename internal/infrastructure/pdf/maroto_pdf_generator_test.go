package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

func TestFormatMoney_SeparadoresDeMiles(t *testing.T) {
	cases := map[string]string{
		"0":          "0,00",
		"999.5":      "999,50",
		"25000":      "25.000,00",
		"1000000":    "1.000.000,00",
		"-1234567.5": "-1.234.567,50",
		"48.825":     "48,83",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), "entrada %s", in)
	}
}

func TestStatusLabel_DesconocidoEnMayusculas(t *testing.T) {
	assert.Equal(t, "PAGADA", statusLabel(entity.InvoiceStatusPaid))
	assert.Equal(t, "ANULADA", statusLabel("anulada"))
}

func TestGenerateInvoicePDF_ProducePDF(t *testing.T) {
	due := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-000123",
		CustomerName:  "Acme Corp",
		CustomerEmail: "compras@acme.com",
		IssueDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       &due,
		Items: []entity.InvoiceItem{{
			ID: "1", ProductName: "Monitor", Quantity: decimal.NewFromInt(2),
			UnitPrice: decimal.NewFromInt(50), Total: decimal.NewFromInt(100),
		}},
		TaxRate:     decimal.RequireFromString("8.5"),
		Subtotal:    decimal.NewFromInt(100),
		TaxAmount:   decimal.RequireFromString("8.5"),
		TotalAmount: decimal.RequireFromString("108.5"),
		Status:      entity.InvoiceStatusPending,
	}
	gen := NewMarotoPDFGenerator(Issuer{Name: "Inventario Demo", Email: "facturas@demo.com"})

	out, err := gen.GenerateInvoicePDF(context.Background(), inv)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestGenerateInvoicePDF_FacturaNula(t *testing.T) {
	_, err := NewMarotoPDFGenerator(Issuer{}).GenerateInvoicePDF(context.Background(), nil)
	assert.Error(t, err)
}
