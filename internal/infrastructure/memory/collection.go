package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
)

// collection lista ordenada (más reciente primero) protegida por RWMutex.
// Todo lo que entra o sale pasa por clone: los llamadores nunca comparten estado con el almacén.
type collection[T any] struct {
	entity string
	env    *env
	idOf   func(*T) string
	clone  func(*T) *T

	mu    sync.RWMutex
	items []*T
}

func newCollection[T any](e *env, entity string, idOf func(*T) string, clone func(*T) *T) *collection[T] {
	return &collection[T]{entity: entity, env: e, idOf: idOf, clone: clone}
}

func (c *collection[T]) notFound(id string) error {
	return fmt.Errorf("%s %s: %w", c.entity, id, domain.ErrNotFound)
}

func (c *collection[T]) indexOf(id string) int {
	for i, it := range c.items {
		if c.idOf(it) == id {
			return i
		}
	}
	return -1
}

// load reemplaza el contenido sin latencia ni eventos (siembra).
func (c *collection[T]) load(records []*T) {
	items := make([]*T, 0, len(records))
	for _, r := range records {
		if r != nil {
			items = append(items, c.clone(r))
		}
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

func (c *collection[T]) list(ctx context.Context) ([]*T, error) {
	return c.filter(ctx, nil)
}

// filter devuelve copias de los registros que cumplen keep (todos si keep es nil).
func (c *collection[T]) filter(ctx context.Context, keep func(*T) bool) ([]*T, error) {
	if err := c.env.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*T, 0, len(c.items))
	for _, it := range c.items {
		if keep == nil || keep(it) {
			out = append(out, c.clone(it))
		}
	}
	return out, nil
}

// first devuelve una copia del primer registro que cumple match, o nil.
func (c *collection[T]) first(ctx context.Context, match func(*T) bool) (*T, error) {
	if err := c.env.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if match(it) {
			return c.clone(it), nil
		}
	}
	return nil, nil
}

func (c *collection[T]) get(ctx context.Context, id string) (*T, error) {
	if err := c.env.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.clone(c.items[i]), nil
	}
	return nil, c.notFound(id)
}

// insert asigna id y marcas de tiempo vía stamp y antepone el registro.
func (c *collection[T]) insert(ctx context.Context, rec *T, stamp func(r *T, id string, now time.Time)) (*T, error) {
	if rec == nil {
		return nil, fmt.Errorf("%s: %w", c.entity, domain.ErrInvalidInput)
	}
	if err := c.env.wait(ctx); err != nil {
		return nil, err
	}
	stored := c.clone(rec)
	id := c.env.newID()
	stamp(stored, id, c.env.now())

	c.mu.Lock()
	c.items = append([]*T{stored}, c.items...)
	out := c.clone(stored)
	c.mu.Unlock()

	c.env.notifier.publish(ChangeEvent{Entity: c.entity, Action: ActionCreated, ID: id})
	return out, nil
}

// update aplica apply sobre el registro almacenado bajo lock exclusivo.
func (c *collection[T]) update(ctx context.Context, id string, apply func(r *T, now time.Time)) (*T, error) {
	return c.mutate(ctx, id, ActionUpdated, func(r *T, now time.Time) error {
		apply(r, now)
		return nil
	})
}

// updateChecked como update, pero apply puede rechazar el cambio leyendo el estado vigente;
// si devuelve error el registro queda intacto y no se publica evento.
func (c *collection[T]) updateChecked(ctx context.Context, id string, apply func(r *T, now time.Time) error) (*T, error) {
	return c.mutate(ctx, id, ActionUpdated, apply)
}

func (c *collection[T]) mutate(ctx context.Context, id, action string, apply func(r *T, now time.Time) error) (*T, error) {
	if err := c.env.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return nil, c.notFound(id)
	}
	next := c.clone(c.items[i])
	if err := apply(next, c.env.now()); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	c.items[i] = next
	out := c.clone(next)
	c.mu.Unlock()

	c.env.notifier.publish(ChangeEvent{Entity: c.entity, Action: action, ID: id})
	return out, nil
}

func (c *collection[T]) remove(ctx context.Context, id string) error {
	if err := c.env.wait(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return c.notFound(id)
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.mu.Unlock()

	c.env.notifier.publish(ChangeEvent{Entity: c.entity, Action: ActionDeleted, ID: id})
	return nil
}
