package billing

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// InvoicePDFGenerator puerto de salida: renderiza una factura a PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice) ([]byte, error)
}
