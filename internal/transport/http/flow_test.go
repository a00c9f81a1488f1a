package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/internal/store/memory"
	"github.com/Gunvolt24/grubdash/internal/testutil"
	rest "github.com/Gunvolt24/grubdash/internal/transport/http"
	"github.com/Gunvolt24/grubdash/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type app struct {
	dishes *memory.DishStore
	orders *memory.OrderStore
	srv    *httptest.Server
}

func newApp(t *testing.T, dishes []domain.Dish, orders []domain.Order) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	a := &app{dishes: memory.NewDishStore(dishes), orders: memory.NewOrderStore(orders)}
	ids := memory.UUIDSupplier{}
	h := rest.NewHandler(
		usecase.NewDishService(a.dishes, ids, noopLogger{}),
		usecase.NewOrderService(a.orders, ids, noopLogger{}),
		noopLogger{}, 2*time.Second, 0,
	)
	a.srv = httptest.NewServer(rest.NewRouter(h, ""))
	t.Cleanup(a.srv.Close)
	return a
}

func (a *app) call(t *testing.T, method, path string, body []byte) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, a.srv.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

func TestFlow_DishCreateReadUpdate(t *testing.T) {
	a := newApp(t, nil, nil)

	fields := testutil.DishFields()
	code, out := a.call(t, http.MethodPost, "/dishes", testutil.Body(fields))
	require.Equal(t, http.StatusCreated, code)
	created := out["data"].(map[string]any)
	id := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, fields["name"], created["name"])
	assert.EqualValues(t, 12, created["price"])

	code, out = a.call(t, http.MethodGet, "/dishes/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, created, out["data"])

	code, out = a.call(t, http.MethodPut, "/dishes/"+id, testutil.Body(testutil.DishFields(testutil.Set("id", "other"))))
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Dish id does not match route id. Dish: other, Route: "+id, out["error"])

	code, out = a.call(t, http.MethodPut, "/dishes/"+id, testutil.Body(testutil.DishFields(testutil.Set("price", 25))))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, id, out["data"].(map[string]any)["id"])
	assert.EqualValues(t, 25, out["data"].(map[string]any)["price"])
	assert.Equal(t, 1, a.dishes.Len())
}

func TestFlow_DishPriceNegative(t *testing.T) {
	a := newApp(t, nil, nil)

	code, out := a.call(t, http.MethodPost, "/dishes", []byte(`{"data":{"name":"A","description":"B","price":-1,"image_url":"x"}}`))
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Dish must have a price that is an integer greater than 0", out["error"])
	assert.Equal(t, 0, a.dishes.Len())
}

func TestFlow_OrderLifecycle(t *testing.T) {
	a := newApp(t, nil, nil)

	code, out := a.call(t, http.MethodPost, "/orders", testutil.Body(testutil.OrderFields(2)))
	require.Equal(t, http.StatusCreated, code)
	order := out["data"].(map[string]any)
	id := order["id"].(string)
	_, hasStatus := order["status"]
	assert.False(t, hasStatus, "status must be unset on create")
	assert.Len(t, order["dishes"], 2)

	// без статуса удалить нельзя
	code, out = a.call(t, http.MethodDelete, "/orders/"+id, nil)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "An order cannot be deleted unless it is pending.", out["error"])

	code, _ = a.call(t, http.MethodPut, "/orders/"+id, testutil.Body(testutil.OrderFields(1, testutil.Set("status", "pending"))))
	require.Equal(t, http.StatusOK, code)

	code, _ = a.call(t, http.MethodDelete, "/orders/"+id, nil)
	require.Equal(t, http.StatusNoContent, code)
	assert.Equal(t, 0, a.orders.Len())

	code, out = a.call(t, http.MethodGet, "/orders/"+id, nil)
	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Order "+id+" does not exist", out["error"])
}

func TestFlow_DeliveredOrderUntouched(t *testing.T) {
	delivered := testutil.MakeOrder(testutil.WithStatus(domain.StatusDelivered))
	a := newApp(t, nil, []domain.Order{delivered})

	for i := 0; i < 3; i++ {
		code, _ := a.call(t, http.MethodDelete, "/orders/"+delivered.ID, nil)
		require.Equal(t, http.StatusBadRequest, code)
	}

	list, _ := a.orders.List(context.Background())
	assert.Equal(t, []domain.Order{delivered}, list)
}

func TestFlow_OrderLineQuantity(t *testing.T) {
	a := newApp(t, nil, nil)

	bad := testutil.OrderFields(3)
	bad["dishes"].([]any)[1].(map[string]any)["quantity"] = 1.5

	code, out := a.call(t, http.MethodPost, "/orders", testutil.Body(bad))
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Dish 1 must have a quantity that is an integer greater than 0", out["error"])
	assert.Equal(t, 0, a.orders.Len())
}
