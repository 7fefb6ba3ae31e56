// Package client implements the metaWeblog / Blogger API on top of a
// domain.Caller.
//
// Each operation assembles its arguments in the order fixed by the method
// (credentials first, payload next, publish flag last), performs one
// synchronous call and converts the result with package weblog. Transport
// errors are returned exactly as the Caller produced them. A successful
// response of an unexpected shape is never an error; it resolves to the
// documented default or sentinel instead.
//
// A Client holds only immutable credentials and may be shared between
// goroutines.
package client
