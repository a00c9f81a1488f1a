package validate

import (
	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/pkg/payload"
)

// IDMatch — если в payload передан id, он должен совпадать с id из маршрута.
// resource — имя ресурса для сообщения ("Dish", "Order").
func IDMatch(resource, routeID string, p payload.Payload) error {
	if !p.Truthy("id") {
		return nil
	}
	if id, ok := p.Get("id").(string); ok && id == routeID {
		return nil
	}
	return domain.InvalidInput(MsgIDMismatch, resource, resource, p.Get("id"), routeID)
}
