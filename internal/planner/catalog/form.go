package catalog

import "strconv"

// Form is a goal's onboarding answers. Shapes differ per (category,
// subcategory), so builders read their own keys with explicit defaults and
// never fail on missing or oddly-typed values.
type Form map[string]interface{}

func (f Form) Str(key, def string) string {
	if f == nil {
		return def
	}
	if s, ok := f[key].(string); ok && s != "" {
		return s
	}
	return def
}

func (f Form) Num(key string, def float64) float64 {
	if f == nil {
		return def
	}
	switch v := f[key].(type) {
	case float64:
		if v != 0 {
			return v
		}
	case int:
		if v != 0 {
			return float64(v)
		}
	case string:
		if n, err := strconv.ParseFloat(v, 64); err == nil && n != 0 {
			return n
		}
	}
	return def
}

func (f Form) Int(key string, def int) int {
	return int(f.Num(key, float64(def)))
}

func (f Form) Bool(key string) bool {
	if f == nil {
		return false
	}
	switch v := f[key].(type) {
	case bool:
		return v
	case string:
		return v != "" && v != "false" && v != "0"
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return false
}

func (f Form) Strs(key string) []string {
	if f == nil {
		return nil
	}
	switch v := f[key].(type) {
	case []string:
		return v
	case []interface{}:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func (f Form) Has(key string) bool {
	if f == nil {
		return false
	}
	v, ok := f[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return false
	}
	return true
}

func (f Form) minutesOr(def int) int {
	return f.Int("minutes", def)
}

func (f Form) slotOr(def Slot) Slot {
	if s := f.Str("bestSlot", ""); s != "" {
		return Slot(s)
	}
	if s := f.Str("planTime", ""); s != "" {
		return Slot(s)
	}
	return def
}

func (f Form) perWeek(key string, def float64) float64 {
	return f.Num(key, def)
}

func clampInt(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
