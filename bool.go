package inputval

import "strings"

// Bool interprets common truthy forms as true and everything else,
// including nil and empty strings, as false. It is total: unlike the
// other functions it never fails, because a boolean has no invalid state.
//
// Truthy values are boolean true, the number 1, and the strings "1", "t",
// "true", "y", "yes" and "on" (case-insensitive, surrounding whitespace
// ignored).
func Bool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "1", "t", "true", "y", "yes", "on":
			return true
		}
		return false
	case int:
		return x == 1
	case int8:
		return x == 1
	case int16:
		return x == 1
	case int32:
		return x == 1
	case int64:
		return x == 1
	case uint:
		return x == 1
	case uint8:
		return x == 1
	case uint16:
		return x == 1
	case uint32:
		return x == 1
	case uint64:
		return x == 1
	case float32:
		return x == 1
	case float64:
		return x == 1
	default:
		return false
	}
}
