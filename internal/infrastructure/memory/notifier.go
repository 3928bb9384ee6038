package memory

import "sync"

// Acciones de ChangeEvent.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Nombres de entidad usados en ChangeEvent y en los errores NotFound.
const (
	EntityProduct       = "product"
	EntityStockLevel    = "stock_level"
	EntityOrder         = "order"
	EntityStockMovement = "stock_movement"
	EntitySupplier      = "supplier"
	EntityInvoice       = "invoice"
)

// ChangeEvent notificación de un cambio ya aplicado en el almacén.
type ChangeEvent struct {
	Entity string
	Action string
	ID     string
}

// Listener recibe eventos de cambio. Se invoca de forma síncrona, fuera del lock de la colección.
type Listener func(ChangeEvent)

type notifier struct {
	mu        sync.RWMutex
	next      int
	listeners map[int]Listener
}

func newNotifier() *notifier {
	return &notifier{listeners: make(map[int]Listener)}
}

func (n *notifier) subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	n.mu.Lock()
	id := n.next
	n.next++
	n.listeners[id] = fn
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, id)
			n.mu.Unlock()
		})
	}
}

func (n *notifier) publish(ev ChangeEvent) {
	n.mu.RLock()
	fns := make([]Listener, 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.RUnlock()
	for _, fn := range fns {
		fn(ev)
	}
}
