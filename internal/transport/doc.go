// Package transport provides the XML-RPC over HTTP implementation of
// domain.Caller.
//
// Requests are encoded and responses decoded with github.com/kolo/xmlrpc;
// this package owns the HTTP exchange and the bridge between wire values and
// the codec's native Go values. Each Call is a single POST: there are no
// retries. Faults reported by the server are returned as *Fault, non-2xx
// statuses as errors naming the method, the endpoint and the status text.
//
// Optional behaviour is enabled through Options:
//   - WithHTTPClient to supply timeouts and connection pooling.
//   - WithLimiter to throttle outgoing calls on the client side.
//   - WithRequestDump to write each encoded request to a file before it is
//     sent, for diagnosing server rejections.
//   - WithLogger for debug logging.
package transport
