package domain

import (
	"errors"
	"fmt"
)

// Базовые (sentinel) ошибки для errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Kind — вид доменной ошибки.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidInput
)

// String — метка вида ошибки (используется в метриках).
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error — доменная ошибка с человекочитаемым сообщением для клиента.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is — сопоставляет ошибку с ErrNotFound / ErrInvalidInput.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrInvalidInput:
		return e.Kind == KindInvalidInput
	}
	return false
}

// NotFound — ресурс с указанным id отсутствует (404).
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidInput — запрос не прошёл валидацию (400).
func InvalidInput(format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// KindOf — вид доменной ошибки; KindUnknown, если err не доменная.
func KindOf(err error) Kind {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Kind
	}
	return KindUnknown
}
