package validate

import (
	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/pkg/payload"
)

// ValidOrder — проверяет атрибуты заказа и каждую строку заказа.
// Строки проверяются по порядку; ошибка первой невалидной строки прерывает проверку.
func ValidOrder(p payload.Payload) error {
	if !p.Present() {
		return domain.InvalidInput(MsgOrderBodyRequired)
	}
	if !p.NonBlank("deliverTo") {
		return domain.InvalidInput(MsgOrderDeliverTo)
	}
	if !p.NonBlank("mobileNumber") {
		return domain.InvalidInput(MsgOrderMobileNumber)
	}
	if !p.Truthy("dishes") {
		return domain.InvalidInput(MsgOrderDish)
	}

	lines, ok := p.List("dishes")
	if !ok || len(lines) == 0 {
		return domain.InvalidInput(MsgOrderDishes)
	}
	for i, raw := range lines {
		if err := validLine(i, payload.FromValue(raw)); err != nil {
			return err
		}
	}
	return nil
}

// validLine — quantity строки: целое число >= 1.
func validLine(index int, line payload.Payload) error {
	if !line.Truthy("quantity") {
		return domain.InvalidInput(MsgOrderLineQuantity, index)
	}
	if quantity, ok := line.WholeNumber("quantity"); !ok || quantity < 1 {
		return domain.InvalidInput(MsgOrderLineQuantity, index)
	}
	return nil
}

// ValidUpdate — при обновлении статус обязателен и не может быть "invalid".
func ValidUpdate(p payload.Payload) error {
	status := p.Text("status")
	if status == "" || domain.Status(status) == domain.StatusInvalid {
		return domain.InvalidInput(MsgOrderStatus)
	}
	return nil
}

// ValidDelete — удалять можно только заказ в статусе pending.
func ValidDelete(order domain.Order) error {
	if order.Status != domain.StatusPending {
		return domain.InvalidInput(MsgOrderNotPending)
	}
	return nil
}
