package ports

import (
	"context"

	"github.com/Gunvolt24/grubdash/internal/domain"
)

// OrderStore — упорядоченная коллекция заказов.
// Требования к реализации: потокобезопасность; порядок вставки; возврат копий.
type OrderStore interface {
	List(ctx context.Context) ([]domain.Order, error)
	Insert(ctx context.Context, order domain.Order) error
	Find(ctx context.Context, id string) (domain.Order, int, bool)
	ReplaceAt(ctx context.Context, pos int, order domain.Order) error

	// DeleteAt — удалить заказ id, ожидаемый на позиции pos.
	// guard вызывается под блокировкой записи с текущим состоянием заказа;
	// его ошибка отменяет удаление и возвращается как есть.
	DeleteAt(ctx context.Context, pos int, id string, guard func(domain.Order) error) error
}
