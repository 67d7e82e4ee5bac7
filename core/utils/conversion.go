package utils

import (
	"fmt"
	"strconv"
)

// ToInt converts various types to int using explicit type switching.
// JSON decoded into map[string]any delivers numbers as float64 and IDs
// occasionally as strings; this flattens all of them.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		i, _ := strconv.Atoi(v)
		return i
	case []byte:
		i, _ := strconv.Atoi(string(v))
		return i
	default:
		s := fmt.Sprintf("%v", v)
		i, _ := strconv.Atoi(s)
		return i
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
