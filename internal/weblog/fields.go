package weblog

import (
	"time"

	"metaweblog/internal/wire"
)

// Per-field readers. Each returns the zero value when the member is absent
// or holds another variant.

func stringField(s wire.Struct, key string) string {
	v, _ := wire.AsString(s[key])
	return v
}

func intField(s wire.Struct, key string) int {
	v, _ := wire.AsInt(s[key])
	return v
}

func timeField(s wire.Struct, key string) time.Time {
	v, _ := wire.AsDateTime(s[key])
	return v
}

// stringsField reads an Array of String. Non-String elements are dropped.
// A present Array always yields a non-nil slice.
func stringsField(s wire.Struct, key string) []string {
	arr, ok := wire.AsArray(s[key])
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if str, ok := wire.AsString(v); ok {
			out = append(out, str)
		}
	}
	return out
}

// putString sets key only for a non-empty string.
func putString(s wire.Struct, key, v string) {
	if v != "" {
		s[key] = wire.String(v)
	}
}

func putInt(s wire.Struct, key string, v int) {
	if v != 0 {
		s[key] = wire.Int(v)
	}
}
