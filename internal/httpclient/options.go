package httpclient

import "net/url"

type callOpts struct {
	skipAuth    bool
	skipRefresh bool
	query       url.Values
}

// CallOption adjusts a single outbound call.
type CallOption func(*callOpts)

// SkipAuth marks a call as public: no bearer token is attached and the
// 401 refresh cycle is bypassed (login, token refresh, password reset).
func SkipAuth() CallOption {
	return func(o *callOpts) { o.skipAuth = true }
}

// SkipRefresh keeps the bearer token but opts the call out of the 401
// refresh cycle.
func SkipRefresh() CallOption {
	return func(o *callOpts) { o.skipRefresh = true }
}

// WithQuery sets the request's query parameters.
func WithQuery(q url.Values) CallOption {
	return func(o *callOpts) { o.query = q }
}
