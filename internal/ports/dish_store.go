package ports

import (
	"context"

	"github.com/Gunvolt24/grubdash/internal/domain"
)

// DishStore — упорядоченная коллекция блюд.
// Требования к реализации: потокобезопасность; порядок вставки; возврат копий.
type DishStore interface {
	// List — все блюда в порядке добавления.
	List(ctx context.Context) ([]domain.Dish, error)

	// Insert — добавить блюдо в конец коллекции.
	Insert(ctx context.Context, dish domain.Dish) error

	// Find — блюдо и его позиция; (_, _, false), если блюда нет.
	Find(ctx context.Context, id string) (domain.Dish, int, bool)

	// ReplaceAt — записать блюдо на позицию pos (с проверкой id);
	// ErrRecordNotFound, если блюдо с таким id уже отсутствует.
	ReplaceAt(ctx context.Context, pos int, dish domain.Dish) error
}
