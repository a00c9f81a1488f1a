package memory

import (
	"context"
	"sync"

	"github.com/Gunvolt24/grubdash/internal/ports"
	"github.com/Gunvolt24/grubdash/pkg/metrics"
)

// collection — упорядоченный срез записей под RWMutex.
// Наружу отдаются только копии (clone), внутрь кладутся тоже копии.
type collection[T any] struct {
	resource string
	idOf     func(T) string
	clone    func(T) T

	mu    sync.RWMutex
	items []T
}

func newCollection[T any](resource string, idOf func(T) string, clone func(T) T, seed []T) *collection[T] {
	c := &collection[T]{
		resource: resource,
		idOf:     idOf,
		clone:    clone,
		items:    make([]T, 0, len(seed)),
	}
	for _, item := range seed {
		c.items = append(c.items, clone(item))
	}
	c.report()
	return c
}

func (c *collection[T]) list(_ context.Context) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.clone(item)
	}
	return out
}

func (c *collection[T]) insert(_ context.Context, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, c.clone(item))
	c.report()
}

func (c *collection[T]) find(_ context.Context, id string) (T, int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if pos := c.indexOf(id); pos >= 0 {
		return c.clone(c.items[pos]), pos, true
	}
	var zero T
	return zero, -1, false
}

func (c *collection[T]) replaceAt(_ context.Context, pos int, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.resolve(pos, c.idOf(item))
	if !ok {
		return ports.ErrRecordNotFound
	}
	c.items[pos] = c.clone(item)
	return nil
}

// deleteAt — guard (если есть) видит копию текущей записи под той же блокировкой.
func (c *collection[T]) deleteAt(_ context.Context, pos int, id string, guard func(T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.resolve(pos, id)
	if !ok {
		return ports.ErrRecordNotFound
	}
	if guard != nil {
		if err := guard(c.clone(c.items[pos])); err != nil {
			return err
		}
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	c.report()
	return nil
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// ------вспомогательные функции (под блокировкой)------

// resolve проверяет, что на pos всё ещё лежит запись id; если нет, ищет её заново.
func (c *collection[T]) resolve(pos int, id string) (int, bool) {
	if pos >= 0 && pos < len(c.items) && c.idOf(c.items[pos]) == id {
		return pos, true
	}
	pos = c.indexOf(id)
	return pos, pos >= 0
}

func (c *collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if c.idOf(item) == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) report() {
	metrics.StoreRecords.WithLabelValues(c.resource).Set(float64(len(c.items)))
}
