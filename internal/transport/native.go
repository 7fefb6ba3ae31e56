package transport

import (
	"fmt"
	"time"

	"metaweblog/internal/wire"
)

// toNative converts v into the Go value the codec encodes as the same
// XML-RPC type.
func toNative(v wire.Value) any {
	switch v := v.(type) {
	case wire.String:
		return string(v)
	case wire.Int:
		return int(v)
	case wire.Bool:
		return bool(v)
	case wire.Double:
		return float64(v)
	case wire.DateTime:
		return time.Time(v)
	case wire.Array:
		out := make([]any, 0, len(v))
		for _, el := range v {
			out = append(out, toNative(el))
		}
		return out
	case wire.Struct:
		out := make(map[string]any, len(v))
		for k, el := range v {
			out[k] = toNative(el)
		}
		return out
	default:
		return nil
	}
}

// fromNative converts a value decoded by the codec into a wire value.
// base64 payloads arrive still encoded, as a string, and are carried as
// String.
func fromNative(x any) (wire.Value, error) {
	switch x := x.(type) {
	case nil:
		return nil, nil
	case string:
		if x == emptyString {
			return wire.String(""), nil
		}
		return wire.String(x), nil
	case int64:
		return wire.Int(x), nil
	case int:
		return wire.Int(x), nil
	case int32:
		return wire.Int(x), nil
	case bool:
		return wire.Bool(x), nil
	case float64:
		return wire.Double(x), nil
	case time.Time:
		return wire.DateTime(x), nil
	case []any:
		out := make(wire.Array, 0, len(x))
		for i, el := range x {
			v, err := fromNative(el)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			out = append(out, v)
		}
		return out, nil
	case map[string]any:
		out := make(wire.Struct, len(x))
		for k, el := range x {
			v, err := fromNative(el)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", k, err)
			}
			out[k] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", x)
	}
}
