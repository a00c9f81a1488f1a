// Пакет ctxmeta — метаданные запроса в context.Context (request_id, trace_id, span_id).
// HTTP-слой кладёт, логгер читает; друг о друге они не знают.
package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type ctxKey string

// KeyRequestID — ключ request_id в контексте.
const KeyRequestID ctxKey = "request_id"

// WithRequestID кладёт request_id в контекст. Пустой id и nil-контекст не меняют ничего.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(KeyRequestID).(string)
	return v, ok && v != ""
}

// TraceIDFromContext — trace_id активного спана.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := spanContext(ctx)
	if !ok {
		return "", false
	}
	return sc.TraceID().String(), true
}

// SpanIDFromContext — span_id активного спана.
func SpanIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := spanContext(ctx)
	if !ok {
		return "", false
	}
	return sc.SpanID().String(), true
}

// Pairs возвращает все известные метаданные как плоский список ключ/значение
// в стабильном порядке: request_id, trace_id, span_id.
func Pairs(ctx context.Context) []any {
	var out []any
	if id, ok := RequestIDFromContext(ctx); ok {
		out = append(out, string(KeyRequestID), id)
	}
	if id, ok := TraceIDFromContext(ctx); ok {
		out = append(out, "trace_id", id)
	}
	if id, ok := SpanIDFromContext(ctx); ok {
		out = append(out, "span_id", id)
	}
	return out
}

func spanContext(ctx context.Context) (trace.SpanContext, bool) {
	if ctx == nil {
		return trace.SpanContext{}, false
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	return sc, sc.IsValid()
}
