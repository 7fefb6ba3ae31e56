package wire

import "time"

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	Invalid Kind = iota
	KindString
	KindInt
	KindBool
	KindDouble
	KindDateTime
	KindArray
	KindStruct
)

var kindNames = [...]string{
	Invalid:      "invalid",
	KindString:   "string",
	KindInt:      "int",
	KindBool:     "boolean",
	KindDouble:   "double",
	KindDateTime: "dateTime.iso8601",
	KindArray:    "array",
	KindStruct:   "struct",
}

// String returns the XML-RPC type name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[Invalid]
}

// Value is a single wire value.
type Value interface {
	Kind() Kind
	sealed()
}

type (
	// String is an XML-RPC <string>. Content is carried verbatim.
	String string
	// Int is an XML-RPC <int>/<i4>.
	Int int
	// Bool is an XML-RPC <boolean>.
	Bool bool
	// Double is an XML-RPC <double>.
	Double float64
	// DateTime is an XML-RPC <dateTime.iso8601>.
	DateTime time.Time
	// Array is an XML-RPC <array>.
	Array []Value
	// Struct is an XML-RPC <struct>.
	Struct map[string]Value
)

func (String) Kind() Kind   { return KindString }
func (Int) Kind() Kind      { return KindInt }
func (Bool) Kind() Kind     { return KindBool }
func (Double) Kind() Kind   { return KindDouble }
func (DateTime) Kind() Kind { return KindDateTime }
func (Array) Kind() Kind    { return KindArray }
func (Struct) Kind() Kind   { return KindStruct }

func (String) sealed()   {}
func (Int) sealed()      {}
func (Bool) sealed()     {}
func (Double) sealed()   {}
func (DateTime) sealed() {}
func (Array) sealed()    {}
func (Struct) sealed()   {}

// KindOf returns the kind of v, or Invalid for a nil Value.
func KindOf(v Value) Kind {
	if v == nil {
		return Invalid
	}
	return v.Kind()
}

// Time returns the timestamp held by d.
func (d DateTime) Time() time.Time { return time.Time(d) }
