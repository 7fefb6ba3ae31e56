package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/kolo/xmlrpc"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"metaweblog/internal/domain"
	"metaweblog/internal/util/atomicfile"
	"metaweblog/internal/wire"
)

// HTTP performs XML-RPC calls over HTTP.
type HTTP struct {
	client  *http.Client
	limiter *rate.Limiter
	dump    string
	log     *zap.Logger
}

// Option configures an HTTP transport.
type Option func(*HTTP)

// WithHTTPClient sets the client used for requests; the default is
// http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(t *HTTP) {
		if c != nil {
			t.client = c
		}
	}
}

// WithLimiter makes every call wait for a token from l first.
func WithLimiter(l *rate.Limiter) Option {
	return func(t *HTTP) { t.limiter = l }
}

// WithRequestDump writes each encoded request body to path before sending.
// An empty path disables the dump.
func WithRequestDump(path string) Option {
	return func(t *HTTP) { t.dump = path }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(t *HTTP) {
		if l != nil {
			t.log = l
		}
	}
}

// New returns an HTTP transport.
func New(opts ...Option) *HTTP {
	t := &HTTP{client: http.DefaultClient, log: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Call encodes method and args, posts them to endpoint and decodes the
// single response value.
func (t *HTTP) Call(ctx context.Context, endpoint, method string, args []wire.Value) (wire.Value, error) {
	params := make([]any, 0, len(args))
	for _, a := range args {
		params = append(params, toNative(a))
	}
	body, err := xmlrpc.EncodeMethodCall(method, params...)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", method, err)
	}

	if t.dump != "" {
		if err := atomicfile.WriteFile(t.dump, body, 0o600); err != nil {
			return nil, fmt.Errorf("dump request: %w", err)
		}
	}
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/xml")

	t.log.Debug("xmlrpc request", zap.String("method", method), zap.Int("bytes", len(body)))
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("xmlrpc %s %s: %s", method, endpoint, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", method, err)
	}
	t.log.Debug("xmlrpc response", zap.String("method", method), zap.Int("bytes", len(raw)))
	return decodeResponse(method, raw)
}

func decodeResponse(method string, raw []byte) (wire.Value, error) {
	resp := xmlrpc.Response(normalize(raw))
	if err := resp.Err(); err != nil {
		return nil, asFault(err)
	}
	var out any
	if err := resp.Unmarshal(&out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	v, err := fromNative(out)
	if err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	return v, nil
}

var _ domain.Caller = (*HTTP)(nil)
