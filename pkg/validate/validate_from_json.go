package validate

import (
	"fmt"

	"github.com/Gunvolt24/grubdash/pkg/payload"
)

// Check — проверка одного тела запроса (ValidDish, ValidOrder, ...).
type Check func(p payload.Payload) error

// Виды тел запросов для CheckFor.
const (
	KindDish        = "dish"
	KindOrder       = "order"
	KindOrderUpdate = "order-update"
)

// CheckFor — проверка по виду тела: dish | order | order-update.
// order-update — тело PUT /orders/:id (ValidOrder + ValidUpdate).
func CheckFor(kind string) (Check, error) {
	switch kind {
	case KindDish:
		return ValidDish, nil
	case KindOrder:
		return ValidOrder, nil
	case KindOrderUpdate:
		return func(p payload.Payload) error {
			if err := ValidOrder(p); err != nil {
				return err
			}
			return ValidUpdate(p)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported kind: %s", kind)
	}
}

// ValidatePayloadFromJSON — разбор тела {"data": {...}} и его проверка.
func ValidatePayloadFromJSON(check Check, raw []byte) (payload.Payload, error) {
	p, err := payload.Decode(raw)
	if err != nil {
		return payload.Payload{}, err
	}
	if err := check(p); err != nil {
		return payload.Payload{}, err
	}
	return p, nil
}
