package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/grubdash/pkg/payload"
)

// Step — один шаг проверки запроса. Шаги выполняются по порядку, первая ошибка прерывает цепочку.
type Step func(ctx context.Context) error

// Chain прогоняет шаги; между шагами проверяет, не истёк ли контекст.
func Chain(ctx context.Context, steps ...Step) error {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("chain aborted: %w", err)
		}
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// check оборачивает валидатор payload в шаг.
func check(fn func(payload.Payload) error, p payload.Payload) Step {
	return func(context.Context) error { return fn(p) }
}
