// Package billing casos de uso de facturación: facturas y su representación en PDF.
package billing

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventario-dashboard/pkg/textutil"
)

// DefaultTaxRate tasa de impuesto (%) cuando la petición no la indica.
var DefaultTaxRate = decimal.RequireFromString("8.5")

// InvoiceUseCase casos de uso de facturas.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
	now  func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, now: time.Now}
}

// NewInvoiceNumber "INV-" + los últimos 6 dígitos del reloj en milisegundos.
func NewInvoiceNumber(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "INV-" + ms
}

// Create crea la factura calculando líneas y totales: total de línea = qty * precio,
// subtotal = Σ líneas, impuesto = subtotal * taxRate / 100. Estado por defecto: draft.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	taxRate := DefaultTaxRate
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}
	if err := dto.NonNegative("taxRate", taxRate); err != nil {
		return nil, err
	}

	items := make([]entity.InvoiceItem, 0, len(in.Items))
	for i, it := range in.Items {
		if err := dto.NonNegative(fmt.Sprintf("items[%d].quantity", i), it.Quantity); err != nil {
			return nil, err
		}
		if err := dto.NonNegative(fmt.Sprintf("items[%d].unitPrice", i), it.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, entity.InvoiceItem{
			ID:          strconv.Itoa(i + 1),
			ProductName: strings.TrimSpace(it.ProductName),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       inventory.OrderLineTotal(inventory.Line{Quantity: it.Quantity, UnitPrice: it.UnitPrice}),
		})
	}
	subtotal, tax, total := inventory.InvoiceTotals(items, taxRate)

	now := uc.now()
	inv := &entity.Invoice{
		InvoiceNumber: in.InvoiceNumber,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		IssueDate:     now,
		DueDate:       in.DueDate,
		Items:         items,
		TaxRate:       taxRate,
		Subtotal:      inventory.Round2(subtotal),
		TaxAmount:     inventory.Round2(tax),
		TotalAmount:   inventory.Round2(total),
		Status:        in.Status,
		Notes:         in.Notes,
	}
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = NewInvoiceNumber(now)
	}
	if in.IssueDate != nil {
		inv.IssueDate = *in.IssueDate
	}
	if inv.Status == "" {
		inv.Status = entity.InvoiceStatusDraft
	}
	return uc.repo.Create(ctx, inv)
}

func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return uc.repo.GetByID(ctx, id)
}

// List facturas más recientes primero que cumplen el filtro, con el resumen de importes.
func (uc *InvoiceUseCase) List(ctx context.Context, f dto.InvoiceFilter) (*dto.InvoiceListResponse, error) {
	if err := dto.Validate(f); err != nil {
		return nil, err
	}
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	since, hasRange := rangeStart(f.DateRange, uc.now())

	items := make([]*entity.Invoice, 0, len(all))
	for _, inv := range all {
		if f.Status != "" && inv.Status != f.Status {
			continue
		}
		if hasRange && inv.IssueDate.Before(since) {
			continue
		}
		if !textutil.ContainsFold(f.Search, inv.InvoiceNumber, inv.CustomerName, inv.CustomerEmail) {
			continue
		}
		items = append(items, inv)
	}
	return &dto.InvoiceListResponse{Items: items, Summary: summarize(items)}, nil
}

// rangeStart inicio del rango relativo a now: week = 7 días, month = 1 mes, quarter = 3 meses.
func rangeStart(dateRange string, now time.Time) (time.Time, bool) {
	switch dateRange {
	case dto.DateRangeWeek:
		return now.AddDate(0, 0, -7), true
	case dto.DateRangeMonth:
		return now.AddDate(0, -1, 0), true
	case dto.DateRangeQuarter:
		return now.AddDate(0, -3, 0), true
	default:
		return time.Time{}, false
	}
}

func summarize(items []*entity.Invoice) dto.InvoiceSummaryDTO {
	s := dto.InvoiceSummaryDTO{
		Count:       len(items),
		TotalAmount: decimal.Zero,
		PaidAmount:  decimal.Zero,
		Outstanding: decimal.Zero,
	}
	for _, inv := range items {
		s.TotalAmount = s.TotalAmount.Add(inv.TotalAmount)
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			s.PaidAmount = s.PaidAmount.Add(inv.TotalAmount)
		case entity.InvoiceStatusPending, entity.InvoiceStatusOverdue:
			s.Outstanding = s.Outstanding.Add(inv.TotalAmount)
		}
	}
	return s
}

// Update aplica los campos enviados (cabecera y estado). Los totales no se recalculan.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*entity.Invoice, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in.Patch())
}

func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
