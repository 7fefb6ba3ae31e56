package wire

import "time"

// AsString reports whether v is a String and returns its content.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// AsInt reports whether v is an Int and returns its value.
func AsInt(v Value) (int, bool) {
	i, ok := v.(Int)
	return int(i), ok
}

// AsBool reports whether v is a Bool and returns its value.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

// AsDouble reports whether v is a Double and returns its value.
func AsDouble(v Value) (float64, bool) {
	f, ok := v.(Double)
	return float64(f), ok
}

// AsDateTime reports whether v is a DateTime and returns its timestamp.
func AsDateTime(v Value) (time.Time, bool) {
	d, ok := v.(DateTime)
	return time.Time(d), ok
}

// AsArray reports whether v is an Array and returns its elements.
func AsArray(v Value) (Array, bool) {
	a, ok := v.(Array)
	return a, ok
}

// AsStruct reports whether v is a Struct and returns its members.
func AsStruct(v Value) (Struct, bool) {
	s, ok := v.(Struct)
	return s, ok
}

// Strings returns an Array of String values, one per element of ss.
func Strings(ss []string) Array {
	out := make(Array, 0, len(ss))
	for _, s := range ss {
		out = append(out, String(s))
	}
	return out
}
