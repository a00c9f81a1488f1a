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
	orderResource  = "orders"
	orderNotExists = "Order %s does not exist"
)

var _ ports.OrderService = (*OrderService)(nil)

// OrderService — заказы: HTTP-операции и приём заказов из Kafka.
type OrderService struct {
	store  ports.OrderStore
	ids    ports.IDSupplier
	log    ports.Logger
	tracer trace.Tracer
}

func NewOrderService(store ports.OrderStore, ids ports.IDSupplier, log ports.Logger) *OrderService {
	return &OrderService{
		store:  store,
		ids:    ids,
		log:    log,
		tracer: otel.Tracer(tracerName),
	}
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.List")
	defer span.End()

	orders, err := s.store.List(ctx)
	if err != nil {
		return nil, reject(ctx, s.log, span, orderResource, err)
	}
	return orders, nil
}

// Create — validOrder, затем новый заказ без статуса.
func (s *OrderService) Create(ctx context.Context, p payload.Payload) (domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Create")
	defer span.End()

	return s.create(ctx, span, p)
}

// CreateFromMessage — заказ из Kafka: тело сообщения в формате {"data": {...}}, та же цепочка, что у Create.
// Нечитаемый JSON — InvalidInput (сообщение не будет переобработано).
func (s *OrderService) CreateFromMessage(ctx context.Context, raw []byte) (domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CreateFromMessage")
	defer span.End()

	p, err := payload.Decode(raw)
	if err != nil {
		return domain.Order{}, reject(ctx, s.log, span, orderResource, domain.InvalidInput("%s", err.Error()))
	}
	return s.create(ctx, span, p)
}

func (s *OrderService) create(ctx context.Context, span trace.Span, p payload.Payload) (domain.Order, error) {
	if err := Chain(ctx, check(validate.ValidOrder, p)); err != nil {
		return domain.Order{}, reject(ctx, s.log, span, orderResource, err)
	}

	order := orderFromPayload(s.ids.NextID(), p)
	if err := s.store.Insert(ctx, order); err != nil {
		return domain.Order{}, reject(ctx, s.log, span, orderResource, err)
	}

	span.SetAttributes(attribute.String("order.id", order.ID))
	s.log.Infof(ctx, "order created id=%s dishes=%d", order.ID, len(order.Dishes))
	return order, nil
}

func (s *OrderService) Read(ctx context.Context, id string) (domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Read", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	var found domain.Order
	if err := Chain(ctx, s.orderExists(id, &found, nil)); err != nil {
		return domain.Order{}, reject(ctx, s.log, span, orderResource, err)
	}
	return found, nil
}

// Update — orderExists -> validOrder -> validUpdate -> idMatch.
// deliverTo, mobileNumber, dishes и status заменяются на месте.
func (s *OrderService) Update(ctx context.Context, id string, p payload.Payload) (domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Update", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	var (
		found domain.Order
		pos   int
	)
	err := Chain(ctx,
		s.orderExists(id, &found, &pos),
		check(validate.ValidOrder, p),
		check(validate.ValidUpdate, p),
		check(func(p payload.Payload) error { return validate.IDMatch("Order", id, p) }, p),
	)
	if err != nil {
		return domain.Order{}, reject(ctx, s.log, span, orderResource, err)
	}

	updated := orderFromPayload(found.ID, p)
	updated.Status = domain.Status(p.Text("status"))
	if err := s.store.ReplaceAt(ctx, pos, updated); err != nil {
		return domain.Order{}, reject(ctx, s.log, span, orderResource, lost(err, orderNotExists, id))
	}

	s.log.Infof(ctx, "order updated id=%s status=%s", id, updated.Status)
	return updated, nil
}

// Destroy — orderExists -> validDelete; удаляется только pending-заказ.
// validDelete повторяется в хранилище под блокировкой: статус мог смениться после поиска.
func (s *OrderService) Destroy(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.Destroy", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	var (
		found domain.Order
		pos   int
	)
	err := Chain(ctx,
		s.orderExists(id, &found, &pos),
		func(context.Context) error { return validate.ValidDelete(found) },
	)
	if err != nil {
		return reject(ctx, s.log, span, orderResource, err)
	}

	if err := s.store.DeleteAt(ctx, pos, id, validate.ValidDelete); err != nil {
		return reject(ctx, s.log, span, orderResource, lost(err, orderNotExists, id))
	}

	s.log.Infof(ctx, "order deleted id=%s", id)
	return nil
}

func (s *OrderService) orderExists(id string, found *domain.Order, pos *int) Step {
	return func(ctx context.Context) error {
		order, at, ok := s.store.Find(ctx, id)
		if !ok {
			return domain.NotFound(orderNotExists, id)
		}
		*found = order
		if pos != nil {
			*pos = at
		}
		return nil
	}
}
