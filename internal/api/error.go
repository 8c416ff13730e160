package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrSessionExpired is the terminal authentication-expiry error. The refresh
// cycle emits it when recovery is impossible; callers observing it should
// send the user back to login. Match with errors.Is.
var ErrSessionExpired = errors.New("session expired, please log in again")

// Error is the normalized failure shape produced by the HTTP client.
// It is constructed either from a backend envelope (preserving the
// backend-declared status code and message) or synthesized locally for
// transport-level failures.
type Error struct {
	Message    string
	StatusCode int
	Status     bool
	Tag        string
	Data       json.RawMessage

	cause error
}

func (e *Error) Error() string {
	if e.Tag != "" && e.Message != "" {
		return e.Tag + ": " + e.Message
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Tag
}

func (e *Error) Unwrap() error { return e.cause }

// ErrorFromEnvelope builds an *Error from a decoded failure envelope.
// Field values are carried over verbatim; fallbackCode is used only when
// the body did not declare a status code.
func ErrorFromEnvelope(env *Response[json.RawMessage], fallbackCode int) *Error {
	code := env.StatusCode
	if code == 0 {
		code = fallbackCode
	}
	return &Error{
		Message:    env.Message,
		StatusCode: code,
		Status:     env.Status,
		Tag:        env.Error,
		Data:       env.Data,
	}
}

// NetworkError wraps a transport-level failure (DNS, timeout, connection
// refused) where no backend response was received.
func NetworkError(err error) *Error {
	return &Error{
		Message:    err.Error(),
		StatusCode: http.StatusInternalServerError,
		Status:     false,
		Tag:        "Network error",
		cause:      err,
	}
}

// MessageFor extracts a user-presentable message from any error coming out of
// the HTTP layer. Unknown error kinds map to a generic message so raw
// diagnostics never reach the user.
func MessageFor(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrSessionExpired) {
		return ErrSessionExpired.Error()
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Tag == "Network error" {
			return "request failed, please try again"
		}
		return apiErr.Message
	}
	return "an unexpected error occurred"
}
