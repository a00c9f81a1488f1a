package memory

import (
	"context"

	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/internal/ports"
)

var _ ports.OrderStore = (*OrderStore)(nil)

type OrderStore struct {
	c *collection[domain.Order]
}

func NewOrderStore(seed []domain.Order) *OrderStore {
	return &OrderStore{c: newCollection("orders",
		func(o domain.Order) string { return o.ID },
		domain.Order.Clone,
		seed,
	)}
}

func (s *OrderStore) List(ctx context.Context) ([]domain.Order, error) {
	return s.c.list(ctx), nil
}

func (s *OrderStore) Insert(ctx context.Context, order domain.Order) error {
	s.c.insert(ctx, order)
	return nil
}

func (s *OrderStore) Find(ctx context.Context, id string) (domain.Order, int, bool) {
	return s.c.find(ctx, id)
}

func (s *OrderStore) ReplaceAt(ctx context.Context, pos int, order domain.Order) error {
	return s.c.replaceAt(ctx, pos, order)
}

func (s *OrderStore) DeleteAt(ctx context.Context, pos int, id string, guard func(domain.Order) error) error {
	return s.c.deleteAt(ctx, pos, id, guard)
}

func (s *OrderStore) Len() int { return s.c.len() }
