package validate_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/pkg/payload"
	"github.com/Gunvolt24/grubdash/pkg/validate"
)

func validOrderFields() map[string]any {
	return map[string]any{
		"deliverTo":    "308 Negra Arroyo Lane, Albuquerque, NM",
		"mobileNumber": "(505) 143-3369",
		"status":       "pending",
		"dishes": []any{
			map[string]any{"id": "d351db2b49b69679504652ea1cf38241", "quantity": json.Number("2")},
			map[string]any{"id": "90c3d873684bf381dfab29034b5bba73", "quantity": json.Number("1")},
		},
	}
}

func lineQuantityMsg(i int) string { return fmt.Sprintf(validate.MsgOrderLineQuantity, i) }

func TestValidOrder(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		if err := validate.ValidOrder(payload.New(validOrderFields())); err != nil {
			t.Fatalf("expected valid order, got: %v", err)
		}
	})

	type testCase struct {
		name   string
		mutate func(map[string]any)
		msg    string
	}

	setQuantity := func(i int, q any) func(map[string]any) {
		return func(f map[string]any) {
			f["dishes"].([]any)[i].(map[string]any)["quantity"] = q
		}
	}

	cases := []testCase{
		{"missing deliverTo", func(f map[string]any) { delete(f, "deliverTo") }, validate.MsgOrderDeliverTo},
		{"blank deliverTo", func(f map[string]any) { f["deliverTo"] = " " }, validate.MsgOrderDeliverTo},
		{"missing mobileNumber", func(f map[string]any) { delete(f, "mobileNumber") }, validate.MsgOrderMobileNumber},
		{"empty mobileNumber", func(f map[string]any) { f["mobileNumber"] = "" }, validate.MsgOrderMobileNumber},
		{"missing dishes", func(f map[string]any) { delete(f, "dishes") }, validate.MsgOrderDish},
		{"null dishes", func(f map[string]any) { f["dishes"] = nil }, validate.MsgOrderDish},
		{"empty dishes", func(f map[string]any) { f["dishes"] = []any{} }, validate.MsgOrderDishes},
		{"dishes not an array", func(f map[string]any) { f["dishes"] = "pizza" }, validate.MsgOrderDishes},
		{"zero quantity", setQuantity(0, json.Number("0")), lineQuantityMsg(0)},
		{"negative quantity", setQuantity(1, json.Number("-1")), lineQuantityMsg(1)},
		{"fractional quantity", setQuantity(1, json.Number("1.5")), lineQuantityMsg(1)},
		{"string quantity", setQuantity(0, "2"), lineQuantityMsg(0)},
		{"missing quantity", func(f map[string]any) {
			delete(f["dishes"].([]any)[1].(map[string]any), "quantity")
		}, lineQuantityMsg(1)},
		// невалидная строка не последняя — всё равно ошибка
		{"invalid first of two", setQuantity(0, json.Number("-3")), lineQuantityMsg(0)},
		{"non-object line", func(f map[string]any) { f["dishes"] = []any{json.Number("3")} }, lineQuantityMsg(0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := validOrderFields()
			tc.mutate(fields)

			err := validate.ValidOrder(payload.New(fields))
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if err.Error() != tc.msg {
				t.Errorf("expected message %q, got %q", tc.msg, err.Error())
			}
		})
	}

	t.Run("missing data", func(t *testing.T) {
		err := validate.ValidOrder(payload.Payload{})
		if err == nil || err.Error() != validate.MsgOrderBodyRequired {
			t.Fatalf("expected %q, got %v", validate.MsgOrderBodyRequired, err)
		}
	})

	t.Run("first invalid line wins", func(t *testing.T) {
		fields := validOrderFields()
		setQuantity(0, json.Number("0"))(fields)
		setQuantity(1, json.Number("0"))(fields)
		err := validate.ValidOrder(payload.New(fields))
		if err == nil || err.Error() != lineQuantityMsg(0) {
			t.Fatalf("expected %q, got %v", lineQuantityMsg(0), err)
		}
	})
}

func TestValidUpdate(t *testing.T) {
	tests := []struct {
		name    string
		status  any
		wantErr bool
	}{
		{"pending", "pending", false},
		{"delivered", "delivered", false},
		{"out-for-delivery", "out-for-delivery", false},
		{"missing", nil, true},
		{"empty", "", true},
		{"invalid", "invalid", true},
		{"non-string", json.Number("1"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validOrderFields()
			if tt.status == nil {
				delete(fields, "status")
			} else {
				fields["status"] = tt.status
			}

			err := validate.ValidUpdate(payload.New(fields))
			if tt.wantErr {
				if err == nil || err.Error() != validate.MsgOrderStatus {
					t.Fatalf("expected %q, got %v", validate.MsgOrderStatus, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidDelete(t *testing.T) {
	if err := validate.ValidDelete(domain.Order{ID: "1", Status: domain.StatusPending}); err != nil {
		t.Fatalf("pending order must be deletable, got %v", err)
	}

	for _, status := range []domain.Status{"", domain.StatusPreparing, domain.StatusOutForDelivery, domain.StatusDelivered} {
		err := validate.ValidDelete(domain.Order{ID: "1", Status: status})
		if err == nil || err.Error() != validate.MsgOrderNotPending {
			t.Fatalf("status %q: expected %q, got %v", status, validate.MsgOrderNotPending, err)
		}
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("status %q: expected ErrInvalidInput", status)
		}
	}
}
