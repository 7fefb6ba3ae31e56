package interfaces

import (
	"context"

	"metaweblog/internal/wire"
)

// Caller performs one XML-RPC call against a fully-qualified endpoint.
//
// It returns the decoded response value, or an error for connection
// failures, malformed responses and server faults.
type Caller interface {
	Call(ctx context.Context, endpoint, method string, args []wire.Value) (wire.Value, error)
}
