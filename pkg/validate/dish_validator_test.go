package validate_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/pkg/payload"
	"github.com/Gunvolt24/grubdash/pkg/validate"
)

func validDishFields() map[string]any {
	return map[string]any{
		"name":        "Dolcelatte and chickpea spaghetti",
		"description": "Spaghetti topped with a blend of dolcelatte and fresh chickpeas",
		"price":       json.Number("19"),
		"image_url":   "https://images.example.com/spaghetti.jpg",
	}
}

func TestValidDish(t *testing.T) {
	t.Run("valid dish", func(t *testing.T) {
		if err := validate.ValidDish(payload.New(validDishFields())); err != nil {
			t.Fatalf("expected valid dish, got: %v", err)
		}
	})

	type testCase struct {
		name   string
		mutate func(map[string]any)
		msg    string
	}

	cases := []testCase{
		{"missing name", func(f map[string]any) { delete(f, "name") }, validate.MsgDishName},
		{"blank name", func(f map[string]any) { f["name"] = "   " }, validate.MsgDishName},
		{"non-string name", func(f map[string]any) { f["name"] = json.Number("5") }, validate.MsgDishName},
		{"missing description", func(f map[string]any) { delete(f, "description") }, validate.MsgDishDescription},
		{"empty description", func(f map[string]any) { f["description"] = "" }, validate.MsgDishDescription},
		{"missing price", func(f map[string]any) { delete(f, "price") }, validate.MsgDishPrice},
		{"zero price", func(f map[string]any) { f["price"] = json.Number("0") }, validate.MsgDishPrice},
		{"negative price", func(f map[string]any) { f["price"] = json.Number("-1") }, validate.MsgDishPriceInteger},
		{"fractional price", func(f map[string]any) { f["price"] = json.Number("9.99") }, validate.MsgDishPriceInteger},
		{"string price", func(f map[string]any) { f["price"] = "17" }, validate.MsgDishPriceInteger},
		{"missing image_url", func(f map[string]any) { delete(f, "image_url") }, validate.MsgDishImageURL},
		{"blank image_url", func(f map[string]any) { f["image_url"] = "\t" }, validate.MsgDishImageURL},
		// порядок проверок: name раньше price
		{"name before price", func(f map[string]any) {
			delete(f, "name")
			f["price"] = "x"
		}, validate.MsgDishName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := validDishFields()
			tc.mutate(fields)

			err := validate.ValidDish(payload.New(fields))
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
		err := validate.ValidDish(payload.Payload{})
		if err == nil || err.Error() != validate.MsgDishBodyRequired {
			t.Fatalf("expected %q, got %v", validate.MsgDishBodyRequired, err)
		}
	})
}

func TestValidDish_FromRawJSON(t *testing.T) {
	p, err := payload.Decode([]byte(`{"data":{"name":"A","description":"B","price":-1,"image_url":"x"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	err = validate.ValidDish(p)
	if err == nil || err.Error() != validate.MsgDishPriceInteger {
		t.Fatalf("expected %q, got %v", validate.MsgDishPriceInteger, err)
	}
}
