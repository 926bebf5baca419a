package api

import (
	"net/http"

	"github.com/dmitrijs2005/blogcli/internal/logging"
)

// Option configures a Gateway.
type Option func(*Gateway)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		if c != nil {
			g.client = c
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.log = l
		}
	}
}

// WithUnauthorizedHandler registers h at construction time; see OnUnauthorized.
func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(g *Gateway) {
		if h != nil {
			g.handlers = append(g.handlers, h)
		}
	}
}

// RequestOption configures a single call.
type RequestOption func(*requestOptions)

type requestOptions struct {
	method      string
	headers     map[string]string
	body        any
	requireAuth bool
}

func defaultRequestOptions() *requestOptions {
	return &requestOptions{
		method:      http.MethodGet,
		headers:     map[string]string{},
		requireAuth: true,
	}
}

// WithMethod sets the HTTP method (default GET).
func WithMethod(method string) RequestOption {
	return func(o *requestOptions) { o.method = method }
}

// WithHeader sets a header, overriding the gateway defaults.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) { o.headers[key] = value }
}

// WithBody sets the request payload. []byte and json.RawMessage are sent
// as-is; anything else is encoded as JSON.
func WithBody(v any) RequestOption {
	return func(o *requestOptions) { o.body = v }
}

// WithoutAuth sends the request without the Authorization header even when
// a credential is stored.
func WithoutAuth() RequestOption {
	return func(o *requestOptions) { o.requireAuth = false }
}
