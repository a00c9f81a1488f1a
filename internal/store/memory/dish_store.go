// Пакет memory — хранилища блюд и заказов в памяти процесса.
package memory

import (
	"context"

	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/internal/ports"
)

var _ ports.DishStore = (*DishStore)(nil)

type DishStore struct {
	c *collection[domain.Dish]
}

// NewDishStore создаёт хранилище, заполненное копиями seed (порядок сохраняется).
func NewDishStore(seed []domain.Dish) *DishStore {
	return &DishStore{c: newCollection("dishes",
		func(d domain.Dish) string { return d.ID },
		func(d domain.Dish) domain.Dish { return d },
		seed,
	)}
}

func (s *DishStore) List(ctx context.Context) ([]domain.Dish, error) {
	return s.c.list(ctx), nil
}

func (s *DishStore) Insert(ctx context.Context, dish domain.Dish) error {
	s.c.insert(ctx, dish)
	return nil
}

func (s *DishStore) Find(ctx context.Context, id string) (domain.Dish, int, bool) {
	return s.c.find(ctx, id)
}

func (s *DishStore) ReplaceAt(ctx context.Context, pos int, dish domain.Dish) error {
	return s.c.replaceAt(ctx, pos, dish)
}

// Len — число блюд.
func (s *DishStore) Len() int { return s.c.len() }
