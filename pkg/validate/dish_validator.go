package validate

import (
	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/pkg/payload"
)

// ValidDish — проверяет атрибуты блюда; возвращает первую найденную ошибку.
func ValidDish(p payload.Payload) error {
	if !p.Present() {
		return domain.InvalidInput(MsgDishBodyRequired)
	}
	if !p.NonBlank("name") {
		return domain.InvalidInput(MsgDishName)
	}
	if !p.NonBlank("description") {
		return domain.InvalidInput(MsgDishDescription)
	}
	if !p.Truthy("price") {
		return domain.InvalidInput(MsgDishPrice)
	}
	if price, ok := p.WholeNumber("price"); !ok || price <= 0 {
		return domain.InvalidInput(MsgDishPriceInteger)
	}
	if !p.NonBlank("image_url") {
		return domain.InvalidInput(MsgDishImageURL)
	}
	return nil
}
