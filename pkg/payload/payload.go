// Пакет payload — разбор тела запроса вида {"data": {...}} без привязки к
// конкретной структуре: валидаторам нужно отличать отсутствующее поле от
// пустого, число от строки и целое от дробного.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Payload — содержимое контейнера data.
type Payload struct {
	fields  map[string]any
	present bool
}

// Decode — разбирает тело запроса. Числа остаются json.Number.
// Пустое тело — отсутствующий payload без ошибки; невалидный JSON —
// отсутствующий payload и ошибка (для логов).
func Decode(raw []byte) (Payload, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Payload{}, nil
	}

	var envelope struct {
		Data any `json:"data"`
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&envelope); err != nil {
		return Payload{}, fmt.Errorf("invalid json: %w", err)
	}
	// после объекта не должно быть лишних данных
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return Payload{}, fmt.Errorf("invalid json: trailing data")
	}

	return FromValue(envelope.Data), nil
}

// FromValue — payload из уже разобранного значения.
// Ложное (в смысле Truthy) значение — payload отсутствует;
// истинное, но не объект — payload без полей.
func FromValue(v any) Payload {
	if !Truthy(v) {
		return Payload{}
	}
	fields, _ := v.(map[string]any)
	return Payload{fields: fields, present: true}
}

// New — payload из готового набора полей (nil — отсутствует).
func New(fields map[string]any) Payload {
	return Payload{fields: fields, present: fields != nil}
}

// Present — был ли передан контейнер data.
func (p Payload) Present() bool { return p.present }

// Get — сырое значение поля (nil, если поля нет).
func (p Payload) Get(key string) any { return p.fields[key] }

// Truthy — поле присутствует и истинно.
func (p Payload) Truthy(key string) bool { return Truthy(p.fields[key]) }

// Text — строковое значение поля или "".
func (p Payload) Text(key string) string {
	s, _ := p.fields[key].(string)
	return s
}

// NonBlank — поле строковое и не состоит из одних пробелов.
func (p Payload) NonBlank(key string) bool {
	return strings.TrimSpace(p.Text(key)) != ""
}

// WholeNumber — целочисленное значение поля.
func (p Payload) WholeNumber(key string) (int, bool) {
	return WholeNumber(p.fields[key])
}

// Fields — копия всех полей (nil для отсутствующего payload).
func (p Payload) Fields() map[string]any {
	if p.fields == nil {
		return nil
	}
	out := make(map[string]any, len(p.fields))
	for k, v := range p.fields {
		out[k] = v
	}
	return out
}

// List — значение поля, если это массив.
func (p Payload) List(key string) ([]any, bool) {
	list, ok := p.fields[key].([]any)
	return list, ok
}

// MarshalJSON — каноническое представление (null для отсутствующего payload).
func (p Payload) MarshalJSON() ([]byte, error) {
	if !p.present {
		return []byte("null"), nil
	}
	if p.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.fields)
}
