// Package weblog converts between the blog domain types and wire values.
//
// Outbound conversion is lossless: a Post becomes a Struct keyed by the
// metaWeblog member names, with absent optional fields left out so the
// server applies its own defaults on create and leaves them unchanged on
// edit.
//
// Inbound conversion is tolerant. Each field is read from its member under
// the expected variant; a missing member or a different variant leaves the
// field at its zero value instead of failing the whole conversion. Batch
// results skip elements that are not Structs and report how many were
// skipped. Scalar results fall back to fixed sentinels (PostIDUnparsed,
// CategoryIDUnparsed, false) when the variant does not match.
package weblog
