package usecase

import (
	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/pkg/payload"
)

// Конвертеры payload -> domain. Вызываются только после успешной валидации,
// поэтому обязательные поля гарантированно на месте.

func dishFromPayload(id string, p payload.Payload) domain.Dish {
	price, _ := p.WholeNumber("price")
	return domain.Dish{
		ID:          id,
		Name:        p.Text("name"),
		Description: p.Text("description"),
		Price:       price,
		ImageURL:    p.Text("image_url"),
	}
}

func orderFromPayload(id string, p payload.Payload) domain.Order {
	return domain.Order{
		ID:           id,
		DeliverTo:    p.Text("deliverTo"),
		MobileNumber: p.Text("mobileNumber"),
		Dishes:       linesFromPayload(p),
	}
}

// linesFromPayload: атрибуты строки сохраняются все, как их прислал клиент.
func linesFromPayload(p payload.Payload) []domain.OrderLine {
	raw, _ := p.List("dishes")
	lines := make([]domain.OrderLine, 0, len(raw))
	for _, item := range raw {
		lines = append(lines, domain.NewOrderLine(payload.FromValue(item).Fields()))
	}
	return lines
}
