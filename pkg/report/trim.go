package report

import (
	"reflect"
	"strings"
)

// Trim normalizes a flat mapping for emission: entries whose value is empty
// under the report's truthiness rule (nil, empty string, empty collection,
// false, numeric zero) are dropped, and kept string values are stripped of
// leading and trailing whitespace. Other values pass through unchanged.
// Pure function; the input map is not modified.
func Trim(mapping map[string]any) map[string]any {
	out := make(map[string]any, len(mapping))
	for k, v := range mapping {
		if isEmpty(v) {
			continue
		}
		if s, ok := v.(string); ok {
			out[k] = strings.TrimSpace(s)
			continue
		}
		out[k] = v
	}
	return out
}

// isEmpty reports whether a value is dropped by Trim. Strings count as empty
// when blank after trimming.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) == ""
	case bool:
		return !t
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	}
	return false
}
