package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// Rangos de fecha del listado de facturas (sobre IssueDate).
const (
	DateRangeWeek    = "week"
	DateRangeMonth   = "month"
	DateRangeQuarter = "quarter"
)

// InvoiceItemRequest línea de factura. El id y el total se calculan.
type InvoiceItemRequest struct {
	ProductName string          `json:"productName" validate:"required,min=1,max=200"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateInvoiceRequest entrada para crear una factura. Los totales se calculan a partir de
// las líneas y de TaxRate (8.5 si se omite).
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber"`
	CustomerName  string               `json:"customerName" validate:"required,min=1,max=200"`
	CustomerEmail string               `json:"customerEmail" validate:"required,email"`
	IssueDate     *time.Time           `json:"issueDate"`
	DueDate       *time.Time           `json:"dueDate"`
	Items         []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	TaxRate       *decimal.Decimal     `json:"taxRate"`
	Status        string               `json:"status" validate:"omitempty,oneof=draft pending paid overdue"`
	Notes         string               `json:"notes"`
}

// UpdateInvoiceRequest actualización parcial (cabecera y estado; los totales no cambian).
type UpdateInvoiceRequest struct {
	CustomerName  *string    `json:"customerName" validate:"omitempty,min=1,max=200"`
	CustomerEmail *string    `json:"customerEmail" validate:"omitempty,email"`
	IssueDate     *time.Time `json:"issueDate"`
	DueDate       *time.Time `json:"dueDate"`
	Status        *string    `json:"status" validate:"omitempty,oneof=draft pending paid overdue"`
	Notes         *string    `json:"notes"`
}

// Patch convierte la petición en el patch de dominio.
func (r UpdateInvoiceRequest) Patch() entity.InvoicePatch {
	return entity.InvoicePatch{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		IssueDate:     r.IssueDate,
		DueDate:       r.DueDate,
		Status:        r.Status,
		Notes:         r.Notes,
	}
}

// InvoiceFilter filtros del listado de facturas.
type InvoiceFilter struct {
	Search    string `query:"search"` // número, cliente o email
	Status    string `query:"status" validate:"omitempty,oneof=draft pending paid overdue"`
	DateRange string `query:"dateRange" validate:"omitempty,oneof=week month quarter"`
}

// InvoiceSummaryDTO totales agregados del listado filtrado.
type InvoiceSummaryDTO struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	Outstanding decimal.Decimal `json:"outstanding"` // pending + overdue
}

// InvoiceListResponse facturas filtradas y su resumen.
type InvoiceListResponse struct {
	Items   []*entity.Invoice `json:"items"`
	Summary InvoiceSummaryDTO `json:"summary"`
}
