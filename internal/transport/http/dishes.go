package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listDishes(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	dishes, err := h.dishes.List(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeData(c, http.StatusOK, dishes)
}

func (h *Handler) createDish(c *gin.Context) {
	p, ok := h.readPayload(c)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	dish, err := h.dishes.Create(ctx, p)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeData(c, http.StatusCreated, dish)
}

func (h *Handler) readDish(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	dish, err := h.dishes.Read(ctx, c.Param("dishId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeData(c, http.StatusOK, dish)
}

func (h *Handler) updateDish(c *gin.Context) {
	p, ok := h.readPayload(c)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	dish, err := h.dishes.Update(ctx, c.Param("dishId"), p)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeData(c, http.StatusOK, dish)
}
