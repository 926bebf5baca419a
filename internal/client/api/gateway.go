// Package api is the single path from the client to the blog backend.
//
// The Gateway resolves endpoints against the configured base URL, attaches
// the stored credential as a bearer token, and classifies responses:
//
//   - 401 clears the local session, notifies the unauthorized handlers and
//     fails with ErrUnauthorized;
//   - any other non-2xx fails with *RequestFailedError;
//   - a 2xx without a JSON content type succeeds with an empty result;
//   - everything else is decoded into the caller's value.
//
// The Gateway does not navigate anywhere itself. A top-level coordinator
// subscribes with OnUnauthorized and decides what the user sees next.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/blogcli/internal/logging"
)

// RequestIDHeader carries a per-call UUID for correlating client and server logs.
const RequestIDHeader = "X-Request-ID"

// CredentialStore is the part of the session store the gateway needs.
type CredentialStore interface {
	Token(ctx context.Context) (string, bool)
	Clear(ctx context.Context)
}

// UnauthorizedEvent describes the call that was rejected.
type UnauthorizedEvent struct {
	Method   string
	Endpoint string
}

// UnauthorizedHandler is invoked synchronously, after the session has been
// cleared and before the failing call returns.
type UnauthorizedHandler func(ctx context.Context, ev UnauthorizedEvent)

type Gateway struct {
	baseURL string
	store   CredentialStore
	client  *http.Client
	log     logging.Logger

	mu       sync.RWMutex
	handlers []UnauthorizedHandler
}

// New creates a Gateway for baseURL (e.g. "http://localhost:8080/api").
func New(baseURL string, store CredentialStore, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		client:  http.DefaultClient,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With("component", "api")
	return g
}

// BaseURL returns the URL relative endpoints are resolved against.
func (g *Gateway) BaseURL() string { return g.baseURL }

// OnUnauthorized registers h to observe every 401.
func (g *Gateway) OnUnauthorized(h UnauthorizedHandler) {
	if h == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handlers = append(g.handlers, h)
}

// Do performs the call and decodes the JSON response into a T. When the
// response carries no JSON, the zero T is returned.
func Do[T any](ctx context.Context, g *Gateway, endpoint string, opts ...RequestOption) (T, error) {
	var out T
	err := g.Request(ctx, endpoint, &out, opts...)
	return out, err
}

// Request performs the call and decodes a JSON response into out, which may
// be nil when the caller expects no body.
func (g *Gateway) Request(ctx context.Context, endpoint string, out any, opts ...RequestOption) error {
	o := defaultRequestOptions()
	for _, opt := range opts {
		opt(o)
	}

	req, err := g.newRequest(ctx, endpoint, o)
	if err != nil {
		return err
	}
	reqID := req.Header.Get(RequestIDHeader)

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Debug(ctx, "api call failed", "method", o.method, "url", req.URL.String(), "request_id", reqID, "error", err)
		return fmt.Errorf("%s %s: %w: %w", o.method, endpoint, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	g.log.Debug(ctx, "api call", "method", o.method, "url", req.URL.String(), "status", resp.StatusCode, "request_id", reqID)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		g.unauthorized(ctx, UnauthorizedEvent{Method: o.method, Endpoint: endpoint})
		return ErrUnauthorized

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &RequestFailedError{StatusCode: resp.StatusCode, Message: errorMessage(resp)}

	case !isJSON(resp.Header.Get("Content-Type")):
		return nil
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

// URL resolves endpoint: absolute http(s) URLs are used verbatim, anything
// else is appended to the base URL.
func (g *Gateway) URL(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return g.baseURL + endpoint
}

func (g *Gateway) newRequest(ctx context.Context, endpoint string, o *requestOptions) (*http.Request, error) {
	body, err := encodeBody(o.body)
	if err != nil {
		return nil, fmt.Errorf("encode %s body: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, o.method, g.URL(endpoint), body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	for k, v := range o.headers {
		req.Header.Set(k, v)
	}

	if o.requireAuth {
		if token, ok := g.store.Token(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// unauthorized clears the session and notifies handlers in registration order.
func (g *Gateway) unauthorized(ctx context.Context, ev UnauthorizedEvent) {
	g.store.Clear(ctx)
	g.log.Info(ctx, "credential rejected, session cleared", "method", ev.Method, "endpoint", ev.Endpoint)

	g.mu.RLock()
	handlers := append([]UnauthorizedHandler(nil), g.handlers...)
	g.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, ev)
	}
}

func encodeBody(v any) (io.Reader, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return bytes.NewReader(b), nil
	case json.RawMessage:
		return bytes.NewReader(b), nil
	case string:
		return strings.NewReader(b), nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(raw), nil
	}
}

// errorMessage extracts {"message": "..."} from an error body, falling back
// to a status-coded message.
func errorMessage(resp *http.Response) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Message == "" {
		return fallbackMessage(resp.StatusCode)
	}
	return payload.Message
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "application/json")
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
