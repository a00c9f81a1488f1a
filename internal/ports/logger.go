package ports

import "context"

// Logger — контракт логгера для внутренних слоёв.
// ctx несёт метаданные запроса (request_id, trace_id); реализация добавляет их к записи.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
