// Package memory implementa los puertos de repositorio sobre colecciones en memoria.
// El estado vive mientras vive el proceso; se siembra desde fixtures al arrancar.
package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Options configura el almacén. Los campos nil/cero toman valores por defecto.
type Options struct {
	// Latency retardo artificial por operación (0 = sin retardo).
	Latency time.Duration
	Now     func() time.Time
	NewID   func() string
}

// env dependencias compartidas por todas las colecciones de un Store.
type env struct {
	latency  time.Duration
	now      func() time.Time
	newID    func() string
	notifier *notifier
}

// wait simula la latencia de red respetando la cancelación del contexto.
func (e *env) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(e.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Store agrupa un repositorio por entidad sobre el mismo reloj, generador de ids y notificador.
type Store struct {
	env *env

	Products       *ProductRepository
	StockLevels    *StockLevelRepository
	Orders         *OrderRepository
	StockMovements *StockMovementRepository
	Suppliers      *SupplierRepository
	Invoices       *InvoiceRepository
}

// NewStore construye un almacén vacío.
func NewStore(opts Options) *Store {
	e := &env{
		latency:  opts.Latency,
		now:      opts.Now,
		newID:    opts.NewID,
		notifier: newNotifier(),
	}
	if e.now == nil {
		e.now = func() time.Time { return time.Now().UTC() }
	}
	if e.newID == nil {
		e.newID = func() string { return uuid.New().String() }
	}
	return &Store{
		env:            e,
		Products:       newProductRepository(e),
		StockLevels:    newStockLevelRepository(e),
		Orders:         newOrderRepository(e),
		StockMovements: newStockMovementRepository(e),
		Suppliers:      newSupplierRepository(e),
		Invoices:       newInvoiceRepository(e),
	}
}

// Subscribe registra un listener que recibe un ChangeEvent tras cada create/update/delete
// exitoso. Devuelve la función para cancelar la suscripción.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	return s.env.notifier.subscribe(fn)
}

// Seed reemplaza el contenido de cada colección por los registros de f, conservando sus ids
// y el orden de los fixtures. No emite eventos.
func (s *Store) Seed(f *Fixtures) {
	if f == nil {
		return
	}
	s.Products.c.load(f.Products)
	s.StockLevels.c.load(f.StockLevels)
	s.Orders.c.load(f.Orders)
	s.StockMovements.c.load(f.StockMovements)
	s.Suppliers.c.load(f.Suppliers)
	s.Invoices.c.load(f.Invoices)
}
