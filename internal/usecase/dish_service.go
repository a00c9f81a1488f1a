// Пакет usecase — прикладная логика блюд и заказов (без знаний о транспорте).
package usecase

import (
	"context"

	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/internal/ports"
	"github.com/Gunvolt24/grubdash/pkg/payload"
	"github.com/Gunvolt24/grubdash/pkg/validate"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/Gunvolt24/grubdash/internal/usecase"

	dishResource  = "dishes"
	dishNotExists = "Dish %s does not exist"
)

var _ ports.DishService = (*DishService)(nil)

type DishService struct {
	store  ports.DishStore
	ids    ports.IDSupplier
	log    ports.Logger
	tracer trace.Tracer
}

// NewDishService — DI-конструктор.
func NewDishService(store ports.DishStore, ids ports.IDSupplier, log ports.Logger) *DishService {
	return &DishService{
		store:  store,
		ids:    ids,
		log:    log,
		tracer: otel.Tracer(tracerName),
	}
}

func (s *DishService) List(ctx context.Context) ([]domain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "DishService.List")
	defer span.End()

	dishes, err := s.store.List(ctx)
	if err != nil {
		return nil, reject(ctx, s.log, span, dishResource, err)
	}
	return dishes, nil
}

// Create — validDish, затем новое блюдо с новым id в конец коллекции.
func (s *DishService) Create(ctx context.Context, p payload.Payload) (domain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "DishService.Create")
	defer span.End()

	if err := Chain(ctx, check(validate.ValidDish, p)); err != nil {
		return domain.Dish{}, reject(ctx, s.log, span, dishResource, err)
	}

	dish := dishFromPayload(s.ids.NextID(), p)
	if err := s.store.Insert(ctx, dish); err != nil {
		return domain.Dish{}, reject(ctx, s.log, span, dishResource, err)
	}

	span.SetAttributes(attribute.String("dish.id", dish.ID))
	s.log.Infof(ctx, "dish created id=%s", dish.ID)
	return dish, nil
}

func (s *DishService) Read(ctx context.Context, id string) (domain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "DishService.Read", trace.WithAttributes(attribute.String("dish.id", id)))
	defer span.End()

	var found domain.Dish
	if err := Chain(ctx, s.dishExists(id, &found, nil)); err != nil {
		return domain.Dish{}, reject(ctx, s.log, span, dishResource, err)
	}
	return found, nil
}

// Update — dishExists -> validDish -> idMatch; поля переписываются на месте, id не меняется.
func (s *DishService) Update(ctx context.Context, id string, p payload.Payload) (domain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "DishService.Update", trace.WithAttributes(attribute.String("dish.id", id)))
	defer span.End()

	var (
		found domain.Dish
		pos   int
	)
	err := Chain(ctx,
		s.dishExists(id, &found, &pos),
		check(validate.ValidDish, p),
		check(func(p payload.Payload) error { return validate.IDMatch("Dish", id, p) }, p),
	)
	if err != nil {
		return domain.Dish{}, reject(ctx, s.log, span, dishResource, err)
	}

	updated := dishFromPayload(found.ID, p)
	if err := s.store.ReplaceAt(ctx, pos, updated); err != nil {
		return domain.Dish{}, reject(ctx, s.log, span, dishResource, lost(err, dishNotExists, id))
	}

	s.log.Infof(ctx, "dish updated id=%s", id)
	return updated, nil
}

// dishExists — шаг поиска блюда; найденная запись и позиция сохраняются для следующих шагов.
func (s *DishService) dishExists(id string, found *domain.Dish, pos *int) Step {
	return func(ctx context.Context) error {
		dish, at, ok := s.store.Find(ctx, id)
		if !ok {
			return domain.NotFound(dishNotExists, id)
		}
		*found = dish
		if pos != nil {
			*pos = at
		}
		return nil
	}
}
