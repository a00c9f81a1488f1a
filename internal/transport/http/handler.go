// Пакет rest — HTTP-транспорт (gin): маршруты /dishes и /orders.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/internal/ports"
	"github.com/Gunvolt24/grubdash/pkg/httpx"
	"github.com/Gunvolt24/grubdash/pkg/payload"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	dishes  ports.DishService
	orders  ports.OrderService
	log     ports.Logger
	timeout time.Duration
	maxBody int64
}

// NewHandler — timeout <= 0 отключает таймаут на обработку; maxBody <= 0 — лимит по умолчанию.
func NewHandler(
	dishes ports.DishService,
	orders ports.OrderService,
	log ports.Logger,
	timeout time.Duration,
	maxBody int64,
) *Handler {
	return &Handler{
		dishes:  dishes,
		orders:  orders,
		log:     log,
		timeout: timeout,
		maxBody: maxBody,
	}
}

// requestContext — контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// readPayload — тело {"data": ...}. Нечитаемый JSON — это "нет data":
// валидатор ресурса вернёт своё сообщение о пустом теле.
func (h *Handler) readPayload(c *gin.Context) (payload.Payload, bool) {
	raw, err := httpx.ReadBody(c, h.maxBody)
	if err != nil {
		if errors.Is(err, httpx.ErrBodyTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return payload.Payload{}, false
		}
		h.log.Warnf(c.Request.Context(), "read body failed: %v", err)
		return payload.Payload{}, true
	}

	p, err := payload.Decode(raw)
	if err != nil {
		h.log.Warnf(c.Request.Context(), "malformed body path=%s: %v", c.Request.URL.Path, err)
		return payload.Payload{}, true
	}
	return p, true
}

// writeError — доменные ошибки отдаются клиенту как есть, остальные — 500.
func (h *Handler) writeError(c *gin.Context, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		c.JSON(statusOf(derr.Kind), gin.H{"error": derr.Message})
		return
	}
	h.log.Errorf(c.Request.Context(), "request failed method=%s path=%s err=%v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func statusOf(kind domain.Kind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}
