// Package wire defines the dynamically-typed value model carried by the
// XML-RPC transport.
//
// A Value is one of a closed set of variants:
//
//   - String, Int, Bool, Double and DateTime scalars
//   - Array, an ordered list of values
//   - Struct, a set of named members
//
// The interface is sealed; only the types in this package implement it, so
// a type switch over the seven variants is exhaustive. A nil Value stands for
// "no value" (an empty response or an XML-RPC nil).
//
// The As* accessors perform exact variant checks and never coerce: an Int is
// not a String and a String holding digits is not an Int.
package wire
