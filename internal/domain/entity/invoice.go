package entity

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura.
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// InvoiceItem línea de factura. Total = Quantity * UnitPrice.
type InvoiceItem struct {
	ID          string          `json:"id"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// Invoice cabecera de factura. Subtotal, TaxAmount y TotalAmount se calculan al crearla
// y no se recalculan en actualizaciones posteriores.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	Items         []InvoiceItem   `json:"items"`
	TaxRate       decimal.Decimal `json:"taxRate"` // porcentaje, ej. 8.5
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Clone copia profunda (Items y DueDate no se comparten).
func (inv Invoice) Clone() Invoice {
	if inv.Items != nil {
		inv.Items = slices.Clone(inv.Items)
	}
	if inv.DueDate != nil {
		d := *inv.DueDate
		inv.DueDate = &d
	}
	return inv
}

// InvoicePatch actualización parcial de una factura. Los totales no forman parte del patch.
type InvoicePatch struct {
	CustomerName  *string
	CustomerEmail *string
	IssueDate     *time.Time
	DueDate       *time.Time
	Status        *string
	Notes         *string
}

// Apply mezcla el patch sobre inv.
func (patch InvoicePatch) Apply(inv *Invoice) {
	if patch.CustomerName != nil {
		inv.CustomerName = *patch.CustomerName
	}
	if patch.CustomerEmail != nil {
		inv.CustomerEmail = *patch.CustomerEmail
	}
	if patch.IssueDate != nil {
		inv.IssueDate = *patch.IssueDate
	}
	if patch.DueDate != nil {
		d := *patch.DueDate
		inv.DueDate = &d
	}
	if patch.Status != nil {
		inv.Status = *patch.Status
	}
	if patch.Notes != nil {
		inv.Notes = *patch.Notes
	}
}
