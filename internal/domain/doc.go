// Package domain defines the blog data model and the contracts between the
// client, the transport and the CLI services. It contains plain types and
// interfaces only; conversion to and from wire values lives in package weblog.
package domain
