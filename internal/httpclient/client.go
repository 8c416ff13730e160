// Package httpclient is the single choke point for every outbound call to
// the eVizor backend. It attaches the current access token at send time,
// recovers transparently from access-token expiry with a single-flighted
// refresh-and-replay cycle, and normalizes every failure into *api.Error.
package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"context"

	"github.com/evizor/console/internal/api"
	"github.com/evizor/console/internal/logging"
	"github.com/evizor/console/internal/session"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

type Client struct {
	baseURL string
	hc      *http.Client
	session *session.Store
	log     logging.Logger
	limiter *rate.Limiter
	refresh singleflight.Group
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithTimeout adjusts the per-request timeout while keeping the tuned
// transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

func WithLogger(log logging.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithRateLimit paces outbound requests to rps with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

func New(baseURL string, sess *session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      newHTTPClient(30 * time.Second),
		session: sess,
		log:     logging.NewNopLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func newHTTPClient(timeout time.Duration) *http.Client {
	d := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           d.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          32,
		MaxIdleConnsPerHost:   8,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{Transport: tr, Timeout: timeout}
}

type result struct {
	status int
	body   []byte
}

// do sends one request and applies the response state machine:
// 2xx passes through, a first 401 enters the refresh-and-replay cycle,
// any other failure is normalized into *api.Error.
func (c *Client) do(ctx context.Context, method, path string, body any, opts ...CallOption) (*result, error) {
	var co callOpts
	for _, o := range opts {
		o(&co)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, api.NetworkError(err)
		}
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	reqID := uuid.NewString()

	token := ""
	if !co.skipAuth {
		token = c.session.AccessToken()
	}

	res, err := c.roundTrip(ctx, method, path, payload, co.query, token, reqID, !co.skipAuth)
	if err != nil {
		return nil, err
	}

	if res.status == http.StatusUnauthorized && !co.skipAuth && !co.skipRefresh {
		// at most one refresh-and-replay per original request
		newToken, err := c.refreshAccessToken(ctx)
		if err != nil {
			return nil, err
		}

		res, err = c.roundTrip(ctx, method, path, payload, co.query, newToken, reqID, true)
		if err != nil {
			return nil, err
		}
		if res.status == http.StatusUnauthorized {
			c.log.Warn(ctx, "replayed request rejected again, forcing logout", "method", method, "path", path)
			c.session.Logout(ctx)
			return nil, api.ErrSessionExpired
		}
	}

	if res.status >= 200 && res.status < 300 {
		return res, nil
	}
	return nil, c.errorFromBody(res)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, query url.Values, token, reqID string, withAuth bool) (*result, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "sending request", "method", method, "path", path, "request_id", reqID)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "transport failure", "method", method, "path", path, "request_id", reqID, "error", err)
		return nil, api.NetworkError(err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, api.NetworkError(err)
	}

	return &result{status: resp.StatusCode, body: b}, nil
}

// errorFromBody deserializes a structured backend error body; bodies that
// are not envelopes fall back to the HTTP status text.
func (c *Client) errorFromBody(res *result) error {
	var env api.Response[json.RawMessage]
	if err := json.Unmarshal(res.body, &env); err == nil && (env.Message != "" || env.StatusCode != 0 || env.Error != "") {
		return api.ErrorFromEnvelope(&env, res.status)
	}
	return &api.Error{
		Message:    http.StatusText(res.status),
		StatusCode: res.status,
		Status:     false,
	}
}

// Do sends a request and decodes the enveloped response body into
// api.Response[T]. Backend-reported failures inside a 2xx body are left for
// the caller to inspect via Response.Err.
func Do[T any](ctx context.Context, c *Client, method, path string, body any, opts ...CallOption) (*api.Response[T], error) {
	res, err := c.do(ctx, method, path, body, opts...)
	if err != nil {
		return nil, err
	}

	var env api.Response[T]
	if err := json.Unmarshal(res.body, &env); err != nil {
		return nil, &api.Error{
			Message:    "malformed response body",
			StatusCode: res.status,
			Status:     false,
			Tag:        "Decode error",
		}
	}
	if env.StatusCode == 0 {
		env.StatusCode = res.status
	}
	return &env, nil
}
