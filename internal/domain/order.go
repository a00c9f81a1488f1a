package domain

import (
	"bytes"
	"encoding/json"

	"github.com/Gunvolt24/grubdash/pkg/payload"
)

// Status — статус заказа.
type Status string

const (
	StatusPending        Status = "pending"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"

	// StatusInvalid — значение, с которым обновление заказа запрещено.
	StatusInvalid Status = "invalid"
)

// OrderLine — строка заказа: ссылка на блюдо и количество.
// Существование блюда с ID в хранилище блюд не проверяется.
//
// Атрибуты, которые не ложатся в типизированные поля (id не строкой,
// дробная или нулевая цена, незнакомые ключи), хранятся в Extra с исходным
// значением и отдаются в JSON как прислал клиент.
type OrderLine struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Price       int    `json:"price,omitempty"`
	Quantity    int    `json:"quantity"`

	Extra map[string]any `json:"-"`
}

// NewOrderLine — строка из сырых атрибутов (значения как после json.Decoder.UseNumber).
func NewOrderLine(attrs map[string]any) OrderLine {
	var line OrderLine
	for key, v := range attrs {
		if !line.setTyped(key, v) {
			if line.Extra == nil {
				line.Extra = make(map[string]any)
			}
			line.Extra[key] = v
		}
	}
	return line
}

// setTyped кладёт значение в типизированное поле, если оно переживёт обратный маршалинг без потерь.
func (l *OrderLine) setTyped(key string, v any) bool {
	switch key {
	case "id", "name", "description", "image_url":
		s, ok := v.(string)
		if !ok || s == "" {
			return false
		}
		switch key {
		case "id":
			l.ID = s
		case "name":
			l.Name = s
		case "description":
			l.Description = s
		default:
			l.ImageURL = s
		}
		return true
	case "price":
		n, ok := payload.WholeNumber(v)
		if !ok || n == 0 {
			return false
		}
		l.Price = n
		return true
	case "quantity":
		n, ok := payload.WholeNumber(v)
		if !ok {
			return false
		}
		l.Quantity = n
		return true
	default:
		return false
	}
}

func (l OrderLine) MarshalJSON() ([]byte, error) {
	type plain OrderLine
	if len(l.Extra) == 0 {
		return json.Marshal(plain(l))
	}

	out := make(map[string]any, len(l.Extra)+6)
	for key, v := range map[string]string{
		"id": l.ID, "name": l.Name, "description": l.Description, "image_url": l.ImageURL,
	} {
		if v != "" {
			out[key] = v
		}
	}
	if l.Price != 0 {
		out["price"] = l.Price
	}
	out["quantity"] = l.Quantity
	for key, v := range l.Extra {
		out[key] = v
	}
	return json.Marshal(out)
}

func (l *OrderLine) UnmarshalJSON(data []byte) error {
	var attrs map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&attrs); err != nil {
		return err
	}
	*l = NewOrderLine(attrs)
	return nil
}

func (l OrderLine) clone() OrderLine {
	if l.Extra != nil {
		extra := make(map[string]any, len(l.Extra))
		for k, v := range l.Extra {
			extra[k] = v
		}
		l.Extra = extra
	}
	return l
}

// Order — заказ клиента. Status не задаётся при создании.
type Order struct {
	ID           string      `json:"id"`
	DeliverTo    string      `json:"deliverTo"`
	MobileNumber string      `json:"mobileNumber"`
	Status       Status      `json:"status,omitempty"`
	Dishes       []OrderLine `json:"dishes"`
}

// Clone — копия заказа с собственным слайсом строк.
func (o Order) Clone() Order {
	if o.Dishes != nil {
		lines := make([]OrderLine, len(o.Dishes))
		for i, line := range o.Dishes {
			lines[i] = line.clone()
		}
		o.Dishes = lines
	}
	return o
}
