package ingest

import (
	"math"
	"strconv"
	"strings"
)

// ParseLocaleNumber converts Turkish-formatted numeric strings (thousands
// ".", decimal ",") and already-numeric values into a float64. The second
// return is false when the input is absent or not a number.
//
// Single-dot strings are ambiguous: "123.45" is read as a decimal when the
// trailing group has at most two digits, otherwise every dot is treated as
// a thousands separator. Known imperfect heuristic, kept on purpose.
func ParseLocaleNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		if math.IsNaN(t) {
			return 0, false
		}
		return t, true
	case float32:
		return ParseLocaleNumber(float64(t))
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		return parseLocaleString(t)
	default:
		return 0, false
	}
}

func parseLocaleString(s string) (float64, bool) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return 0, false
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")

	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	case hasDot:
		parts := strings.Split(s, ".")
		if !(len(parts) == 2 && len(parts[1]) <= 2) {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
