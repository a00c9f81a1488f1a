package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Gunvolt24/grubdash/config"
	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/pkg/validate"
)

// loadSeed — начальные блюда и заказы из JSON-массивов; пустой путь → пусто.
// Каждая запись проходит те же проверки, что и тело POST; id должны быть непустыми и уникальными.
func loadSeed(cfg config.Seed) ([]domain.Dish, []domain.Order, error) {
	var (
		dishes []domain.Dish
		orders []domain.Order
	)
	if err := readJSONArray(cfg.DishesFile, &dishes); err != nil {
		return nil, nil, fmt.Errorf("seed dishes: %w", err)
	}
	if err := checkSeed(dishes, func(d domain.Dish) string { return d.ID }, validate.ValidDish); err != nil {
		return nil, nil, fmt.Errorf("seed dishes: %w", err)
	}

	if err := readJSONArray(cfg.OrdersFile, &orders); err != nil {
		return nil, nil, fmt.Errorf("seed orders: %w", err)
	}
	if err := checkSeed(orders, func(o domain.Order) string { return o.ID }, validate.ValidOrder); err != nil {
		return nil, nil, fmt.Errorf("seed orders: %w", err)
	}
	return dishes, orders, nil
}

func readJSONArray(path string, dst any) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// checkSeed — первая невалидная запись и её индекс.
func checkSeed[T any](records []T, idOf func(T) string, check validate.Check) error {
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		id := idOf(rec)
		if id == "" {
			return fmt.Errorf("record %d: missing id", i)
		}
		if first, dup := seen[id]; dup {
			return fmt.Errorf("record %d: duplicate id %s (first at %d)", i, id, first)
		}
		seen[id] = i

		body, err := json.Marshal(map[string]any{"data": rec})
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if _, err := validate.ValidatePayloadFromJSON(check, body); err != nil {
			return fmt.Errorf("record %d (id=%s): %w", i, id, err)
		}
	}
	return nil
}
