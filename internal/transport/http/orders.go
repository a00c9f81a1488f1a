package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listOrders(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	orders, err := h.orders.List(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeData(c, http.StatusOK, orders)
}

func (h *Handler) createOrder(c *gin.Context) {
	p, ok := h.readPayload(c)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.orders.Create(ctx, p)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeData(c, http.StatusCreated, order)
}

func (h *Handler) readOrder(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.orders.Read(ctx, c.Param("orderId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeData(c, http.StatusOK, order)
}

func (h *Handler) updateOrder(c *gin.Context) {
	p, ok := h.readPayload(c)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.orders.Update(ctx, c.Param("orderId"), p)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeData(c, http.StatusOK, order)
}

// destroyOrder — 204 без тела.
func (h *Handler) destroyOrder(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.orders.Destroy(ctx, c.Param("orderId")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
