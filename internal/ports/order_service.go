package ports

import (
	"context"

	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/pkg/payload"
)

// OrderService — операции над заказами для транспортного слоя.
type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	Create(ctx context.Context, p payload.Payload) (domain.Order, error)
	Read(ctx context.Context, id string) (domain.Order, error)
	Update(ctx context.Context, id string, p payload.Payload) (domain.Order, error)
	Destroy(ctx context.Context, id string) error
}
