// Package inventory contiene las métricas derivadas del inventario: funciones puras sobre
// colecciones ya obtenidas del almacén. Nunca retornan error; las referencias cruzadas
// faltantes se degradan a cero o a exclusión.
package inventory

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// stockIndex indexa los niveles por productID conservando el primero encontrado
// (mismo criterio que una búsqueda lineal en orden de lista).
func stockIndex(levels []*entity.StockLevel) map[string]*entity.StockLevel {
	idx := make(map[string]*entity.StockLevel, len(levels))
	for _, s := range levels {
		if s == nil {
			continue
		}
		if _, ok := idx[s.ProductID]; !ok {
			idx[s.ProductID] = s
		}
	}
	return idx
}

func productIndex(products []*entity.Product) map[string]*entity.Product {
	idx := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		if _, ok := idx[p.ID]; !ok {
			idx[p.ID] = p
		}
	}
	return idx
}

// LowStockProducts devuelve los productos cuyo nivel de stock tiene quantity <= ReorderPoint.
// Un producto sin nivel de stock no se considera bajo. Conserva el orden de products.
func LowStockProducts(products []*entity.Product, levels []*entity.StockLevel) []*entity.Product {
	stock := stockIndex(levels)
	out := make([]*entity.Product, 0)
	for _, p := range products {
		if p == nil {
			continue
		}
		s, ok := stock[p.ID]
		if ok && s.Quantity <= p.ReorderPoint {
			out = append(out, p)
		}
	}
	return out
}

// StockValue valor de un nivel de stock: quantity * unitPrice.
func StockValue(p *entity.Product, s *entity.StockLevel) decimal.Decimal {
	if p == nil || s == nil {
		return decimal.Zero
	}
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// TotalInventoryValue suma quantity * unitPrice sobre todos los niveles de stock.
// Los niveles sin producto asociado aportan 0.
func TotalInventoryValue(products []*entity.Product, levels []*entity.StockLevel) decimal.Decimal {
	byID := productIndex(products)
	total := decimal.Zero
	for _, s := range levels {
		if s == nil {
			continue
		}
		total = total.Add(StockValue(byID[s.ProductID], s))
	}
	return total
}

// CategoryValueDistribution agrupa por categoría el valor del primer nivel de stock de cada producto.
// Las categorías cuyos productos no tienen stock aparecen con valor 0.
func CategoryValueDistribution(products []*entity.Product, levels []*entity.StockLevel) map[string]decimal.Decimal {
	stock := stockIndex(levels)
	dist := make(map[string]decimal.Decimal)
	for _, p := range products {
		if p == nil {
			continue
		}
		dist[p.Category] = dist[p.Category].Add(StockValue(p, stock[p.ID]))
	}
	return dist
}

// CategoryShare porcentaje de cada categoría sobre el total de la distribución (0 si el total es 0).
func CategoryShare(dist map[string]decimal.Decimal) map[string]decimal.Decimal {
	total := decimal.Zero
	for _, v := range dist {
		total = total.Add(v)
	}
	out := make(map[string]decimal.Decimal, len(dist))
	for cat, v := range dist {
		out[cat] = Percentage(v, total)
	}
	return out
}

// Percentage part / total * 100, o 0 cuando total es 0.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(total)
}

// StatusBucket conteo y porcentaje de órdenes en un estado.
type StatusBucket struct {
	Count      int
	Percentage decimal.Decimal
}

// OrderStatusHistogram cuenta las órdenes de cada estado indicado.
// Percentage = count / len(orders) * 100; con orders vacío todos los estados quedan en 0%.
func OrderStatusHistogram(orders []*entity.Order, statuses []string) map[string]StatusBucket {
	counts := make(map[string]int, len(statuses))
	for _, o := range orders {
		if o == nil {
			continue
		}
		counts[o.Status]++
	}
	total := decimal.NewFromInt(int64(len(orders)))
	out := make(map[string]StatusBucket, len(statuses))
	for _, st := range statuses {
		c := counts[st]
		out[st] = StatusBucket{
			Count:      c,
			Percentage: Percentage(decimal.NewFromInt(int64(c)), total),
		}
	}
	return out
}

// Line línea de venta con descuento e impuesto porcentuales.
type Line struct {
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal
	TaxPct      decimal.Decimal
}

// OrderLineTotal total de una línea: el descuento se aplica sobre el subtotal de lista y el
// impuesto sobre el monto ya descontado:
//
//	total = qty * price * (1 - discount/100) * (1 + tax/100)
func OrderLineTotal(l Line) decimal.Decimal {
	gross := l.Quantity.Mul(l.UnitPrice)
	net := gross.Sub(gross.Mul(l.DiscountPct).Div(hundred))
	return net.Add(net.Mul(l.TaxPct).Div(hundred))
}

// Round2 redondeo de presentación a 2 decimales (mitad lejos de cero: 48.825 → 48.83).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// OrderValue suma quantity * unitPrice de los ítems de la orden.
func OrderValue(o *entity.Order) decimal.Decimal {
	total := decimal.Zero
	if o == nil {
		return total
	}
	for _, it := range o.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// OrdersValue suma OrderValue de todas las órdenes.
func OrdersValue(orders []*entity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(OrderValue(o))
	}
	return total
}

// ActiveOrders cuenta las órdenes que no están completadas.
func ActiveOrders(orders []*entity.Order) int {
	n := 0
	for _, o := range orders {
		if o != nil && o.Status != entity.OrderStatusCompleted {
			n++
		}
	}
	return n
}

// FilterOrdersByType devuelve las órdenes del tipo indicado conservando el orden.
func FilterOrdersByType(orders []*entity.Order, orderType string) []*entity.Order {
	out := make([]*entity.Order, 0)
	for _, o := range orders {
		if o != nil && o.Type == orderType {
			out = append(out, o)
		}
	}
	return out
}

// TotalStockQuantity suma las cantidades de todos los niveles.
func TotalStockQuantity(levels []*entity.StockLevel) int {
	n := 0
	for _, s := range levels {
		if s != nil {
			n += s.Quantity
		}
	}
	return n
}

// UniqueCategories categorías distintas en orden de primera aparición.
func UniqueCategories(products []*entity.Product) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range products {
		if p == nil {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// ProductValue valor en stock de un producto.
type ProductValue struct {
	Product  *entity.Product
	Quantity int
	Value    decimal.Decimal
}

// TopValueProducts los n productos con mayor valor en stock (desc). n <= 0 devuelve todos.
// Empates conservan el orden de products.
func TopValueProducts(products []*entity.Product, levels []*entity.StockLevel, n int) []ProductValue {
	stock := stockIndex(levels)
	out := make([]ProductValue, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		pv := ProductValue{Product: p, Value: decimal.Zero}
		if s, ok := stock[p.ID]; ok {
			pv.Quantity = s.Quantity
			pv.Value = StockValue(p, s)
		}
		out = append(out, pv)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.GreaterThan(out[j].Value)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// InvoiceTotals calcula subtotal (Σ qty * price), impuesto (subtotal * taxRate/100) y total.
func InvoiceTotals(items []entity.InvoiceItem, taxRate decimal.Decimal) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Quantity.Mul(it.UnitPrice))
	}
	tax = subtotal.Mul(taxRate).Div(hundred)
	total = subtotal.Add(tax)
	return subtotal, tax, total
}

// SupplierOverallRating promedio de las cuatro calificaciones redondeado a un decimal.
func SupplierOverallRating(r entity.SupplierRating) float64 {
	mean := (r.Delivery + r.Quality + r.Pricing + r.Communication) / 4
	return math.Round(mean*10) / 10
}

// AvailableQuantity quantity - reserved.
func AvailableQuantity(quantity, reserved int) int {
	return quantity - reserved
}
