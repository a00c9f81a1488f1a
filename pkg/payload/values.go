package payload

import (
	"encoding/json"
	"math"
)

// Truthy — истинность значения: nil, false, "", 0 — ложь; объекты и массивы — истина.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case float64:
		return val != 0 && !math.IsNaN(val)
	case int:
		return val != 0
	case int64:
		return val != 0
	default:
		return true
	}
}

// WholeNumber — значение как целое число: только числа без дробной части,
// укладывающиеся в int64. Строки ("10") числом не считаются.
func WholeNumber(v any) (int, bool) {
	var f float64
	switch val := v.(type) {
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = val
	case int:
		return val, true
	case int64:
		return int(val), true
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int(f), true
}
