package requests

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDateOfBirth builds the canonical zero-padded YYYY-MM-DD string
// from a structured {year, month, day} parameter object. Each component
// may arrive as a JSON number (including float-encoded, e.g. 2024.0) or
// as a numeric string; floats truncate to integer. A missing or
// non-numeric component makes the whole object unusable, so the caller
// falls through to the completeness prompt instead of querying for a
// zero-filled date.
func FormatDateOfBirth(parts map[string]interface{}) (string, bool) {
	year, ok := coerceDateComponent(parts["year"])
	if !ok {
		return "", false
	}
	month, ok := coerceDateComponent(parts["month"])
	if !ok {
		return "", false
	}
	day, ok := coerceDateComponent(parts["day"])
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%d-%02d-%02d", year, month, day), true
}

func coerceDateComponent(value interface{}) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return int(parsed), true
	default:
		return 0, false
	}
}
