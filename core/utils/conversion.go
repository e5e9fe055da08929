package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// stringify converts a decoded JSON value to string.
// Whole floats are rendered without an exponent, so a numeric id decoded as
// float64 keeps its digits.
func stringify(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Field returns key of val as a string when val is an object, or val itself
// as a string otherwise. It reads ids that some endpoints wrap in an object.
func Field(val any, key string) string {
	if m, ok := val.(map[string]any); ok {
		return stringify(m[key])
	}
	return stringify(val)
}

// AbsoluteURL upgrades a protocol-relative URL ("//host/path") to scheme.
// Other values are returned unchanged.
func AbsoluteURL(u, scheme string) string {
	if strings.HasPrefix(u, "//") {
		return scheme + ":" + u
	}
	return u
}

// Relative reports whether u is a path without a host.
func Relative(u string) bool {
	return strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//")
}
