package sqlite

import (
	"reflect"
	"time"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

// Encode converts a value for storage. Temporal values become their
// canonical text (types.TimestampLayout); maps and slices are copied and
// walked so temporal values nested inside them are converted too. Every
// other value passes through unchanged.
func Encode(v any) any {
	switch x := v.(type) {
	case time.Time:
		return types.FormatTimestamp(x)
	case *time.Time:
		if x == nil {
			return nil
		}
		return types.FormatTimestamp(*x)
	case types.Timestamp:
		return types.FormatTimestamp(x.Time)
	case *types.Timestamp:
		if x == nil {
			return nil
		}
		return types.FormatTimestamp(x.Time)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Encode(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Encode(e)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(x))
		for i, e := range x {
			out[i] = Encode(e).(map[string]any)
		}
		return out
	default:
		return v
	}
}

// Decode converts a value read from storage. Strings that start with a
// date-time prefix and parse as RFC 3339 become time.Time; maps and slices
// are copied and walked. Every other value, including strings that merely
// resemble numbers or dates, passes through unchanged.
func Decode(v any) any {
	switch x := v.(type) {
	case string:
		if !types.LooksLikeTimestamp(x) {
			return x
		}
		t, err := types.ParseTimestamp(x)
		if err != nil {
			return x
		}
		return t
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Decode(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Decode(e)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(x))
		for i, e := range x {
			out[i] = Decode(e).(map[string]any)
		}
		return out
	default:
		return v
	}
}

// isNull reports whether v binds as SQL NULL: untyped nil or a nil pointer.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// bindValue prepares a field value as a statement argument.
func bindValue(v any) any {
	if isNull(v) {
		return nil
	}
	return Encode(v)
}
