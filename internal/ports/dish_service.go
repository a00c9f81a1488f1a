package ports

import (
	"context"

	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/pkg/payload"
)

// DishService — операции над блюдами для транспортного слоя.
type DishService interface {
	List(ctx context.Context) ([]domain.Dish, error)
	Create(ctx context.Context, p payload.Payload) (domain.Dish, error)
	Read(ctx context.Context, id string) (domain.Dish, error)
	Update(ctx context.Context, id string, p payload.Payload) (domain.Dish, error)
}
