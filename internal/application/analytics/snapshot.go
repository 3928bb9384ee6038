package analytics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

// Repos repositorios de solo lectura que consumen los casos de uso de analítica.
type Repos struct {
	Products       repository.ProductRepository
	StockLevels    repository.StockLevelRepository
	Orders         repository.OrderRepository
	StockMovements repository.StockMovementRepository
}

// snapshot colecciones leídas en paralelo para un cálculo.
type snapshot struct {
	products  []*entity.Product
	levels    []*entity.StockLevel
	orders    []*entity.Order
	movements []*entity.StockMovement
}

// need indica qué colecciones cargar.
type need struct {
	products, levels, orders, movements bool
}

// load lee en paralelo las colecciones pedidas. El primer error cancela el resto.
func (r Repos) load(ctx context.Context, n need) (*snapshot, error) {
	s := &snapshot{}
	g, gctx := errgroup.WithContext(ctx)
	if n.products {
		g.Go(func() (err error) {
			s.products, err = r.Products.List(gctx)
			return err
		})
	}
	if n.levels {
		g.Go(func() (err error) {
			s.levels, err = r.StockLevels.List(gctx)
			return err
		})
	}
	if n.orders {
		g.Go(func() (err error) {
			s.orders, err = r.Orders.List(gctx)
			return err
		})
	}
	if n.movements {
		g.Go(func() (err error) {
			s.movements, err = r.StockMovements.List(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}
