package rest

import (
	"fmt"
	"net/http"

	"github.com/Gunvolt24/grubdash/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter — gin-движок со всеми маршрутами и middleware.
// otelServiceName == "" — без otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware(), httpx.RequestLogger(h.log), httpx.Metrics())

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	dishes := r.Group("/dishes")
	dishes.GET("", h.listDishes)
	dishes.POST("", h.createDish)
	dishes.GET("/:dishId", h.readDish)
	dishes.PUT("/:dishId", h.updateDish)

	orders := r.Group("/orders")
	orders.GET("", h.listOrders)
	orders.POST("", h.createOrder)
	orders.GET("/:orderId", h.readOrder)
	orders.PUT("/:orderId", h.updateOrder)
	orders.DELETE("/:orderId", h.destroyOrder)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Path not found: %s", c.Request.URL.RequestURI())})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": fmt.Sprintf("%s not allowed for %s", c.Request.Method, c.Request.URL.RequestURI()),
		})
	})

	return r
}
