package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Gunvolt24/grubdash/pkg/payload"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// body — payload из JSON-тела {"data": ...}, как его получает сервис из транспорта.
func body(t *testing.T, data any) payload.Payload {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"data": data})
	require.NoError(t, err)
	p, err := payload.Decode(raw)
	require.NoError(t, err)
	return p
}

func validDish() map[string]any {
	return map[string]any{
		"name":        "Dolcelatte and chickpea spaghetti",
		"description": "Spaghetti topped with a blend of dolcelatte and fresh chickpeas",
		"price":       19,
		"image_url":   "https://images.example.com/spaghetti.jpg",
	}
}

func validOrder() map[string]any {
	return map[string]any{
		"deliverTo":    "308 Negra Arroyo Lane, Albuquerque, NM",
		"mobileNumber": "(505) 143-3369",
		"dishes": []any{
			map[string]any{"id": "d351", "name": "Falafel", "price": 16, "quantity": 2},
		},
	}
}

func with(m map[string]any, key string, v any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for k, val := range m {
		out[k] = val
	}
	if v == nil {
		delete(out, key)
		return out
	}
	out[key] = v
	return out
}
