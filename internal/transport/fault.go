package transport

import (
	"errors"
	"fmt"

	"github.com/kolo/xmlrpc"
)

// Fault is an application error reported by the server in a <fault>
// response.
type Fault struct {
	Code    int
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("xmlrpc fault %d: %s", f.Code, f.Message)
}

// asFault converts the codec's fault type; other errors pass through.
func asFault(err error) error {
	var fe xmlrpc.FaultError
	if errors.As(err, &fe) {
		return &Fault{Code: fe.Code, Message: fe.String}
	}
	return err
}
