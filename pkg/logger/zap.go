// Пакет logger — zap-реализация ports.Logger с метаданными запроса из контекста.
package logger

import (
	"context"

	"github.com/Gunvolt24/grubdash/pkg/ctxmeta"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

// NewZapLogger: prod — JSON-вывод уровня info, иначе development-конфиг.
// Второе значение — функция сброса буферов для defer в main.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	loggerWrap := wrap(logger, isProd)
	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// NewWithCore собирает логгер поверх готового ядра (тесты, observer).
func NewWithCore(core zapcore.Core) *ZapLogger {
	return wrap(zap.New(core), false)
}

func wrap(l *zap.Logger, isProd bool) *ZapLogger {
	return &ZapLogger{base: l, sugar: l.Sugar(), isProd: isProd}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Infof(format, args...)
}

func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Warnf(format, args...)
}

func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Errorf(format, args...)
}

func (z *ZapLogger) withMeta(ctx context.Context) *zap.SugaredLogger {
	pairs := ctxmeta.Pairs(ctx)
	if len(pairs) == 0 {
		return z.sugar
	}
	return z.sugar.With(pairs...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
func (z *ZapLogger) IsProd() bool                { return z.isProd }
