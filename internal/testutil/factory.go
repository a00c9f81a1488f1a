// Пакет testutil — генераторы тестовых данных и окружение для интеграционных тестов.
package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"

	"github.com/Gunvolt24/grubdash/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// DishFields — валидные атрибуты блюда в виде тела запроса (без id).
func DishFields(opts ...func(map[string]any)) map[string]any {
	m := map[string]any{
		"name":        "Dish " + UniqSuffix(),
		"description": "Freshly made",
		"price":       12,
		"image_url":   "https://images.example.com/" + UniqSuffix() + ".jpg",
	}
	for _, fn := range opts {
		fn(m)
	}
	return m
}

// OrderFields — валидные атрибуты заказа; n строк с quantity 1..n.
func OrderFields(n int, opts ...func(map[string]any)) map[string]any {
	lines := make([]any, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, map[string]any{
			"id":       "dish-" + UniqSuffix(),
			"name":     "Line dish",
			"price":    10 * (i + 1),
			"quantity": i + 1,
		})
	}
	m := map[string]any{
		"deliverTo":    "Main st " + UniqSuffix(),
		"mobileNumber": "+1-202-555-0101",
		"dishes":       lines,
	}
	for _, fn := range opts {
		fn(m)
	}
	return m
}

// Set — опция: задать (или удалить при v == nil) поле.
func Set(key string, v any) func(map[string]any) {
	return func(m map[string]any) {
		if v == nil {
			delete(m, key)
			return
		}
		m[key] = v
	}
}

// Body — тело запроса {"data": data}.
func Body(data any) []byte {
	raw, _ := json.Marshal(map[string]any{"data": data})
	return raw
}

// MakeDish — валидное блюдо для предзаполнения хранилища.
func MakeDish() domain.Dish {
	return domain.Dish{
		ID:          "dish-" + UniqSuffix(),
		Name:        "Spaghetti",
		Description: "Spaghetti with chickpeas",
		Price:       19,
		ImageURL:    "https://images.example.com/spaghetti.jpg",
	}
}

// MakeOrder — валидный заказ со статусом pending.
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	o := domain.Order{
		ID:           "ord-" + UniqSuffix(),
		DeliverTo:    "Main st 1",
		MobileNumber: "+1-202-555-0101",
		Status:       domain.StatusPending,
		Dishes:       []domain.OrderLine{{ID: "dish-" + UniqSuffix(), Name: "Widget", Price: 100, Quantity: 1}},
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithStatus(s domain.Status) func(*domain.Order) {
	return func(o *domain.Order) { o.Status = s }
}

func WithLines(n int) func(*domain.Order) {
	return func(o *domain.Order) {
		o.Dishes = make([]domain.OrderLine, 0, n)
		for i := 0; i < n; i++ {
			o.Dishes = append(o.Dishes, domain.OrderLine{ID: "dish-" + UniqSuffix(), Price: 10 * (i + 1), Quantity: i + 1})
		}
	}
}
