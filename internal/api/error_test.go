package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorFromEnvelope_PreservesBackendFields(t *testing.T) {
	env := &Response[json.RawMessage]{
		StatusCode: 422,
		Status:     false,
		Message:    "name already in use",
		Error:      "Validation error",
		Data:       json.RawMessage(`{"field":"name"}`),
	}

	e := ErrorFromEnvelope(env, 400)

	require.Equal(t, "name already in use", e.Message)
	require.Equal(t, 422, e.StatusCode)
	require.False(t, e.Status)
	require.Equal(t, "Validation error", e.Tag)
	require.JSONEq(t, `{"field":"name"}`, string(e.Data))
}

func TestErrorFromEnvelope_FallbackStatusCode(t *testing.T) {
	env := &Response[json.RawMessage]{Status: false, Message: "nope"}
	e := ErrorFromEnvelope(env, 503)
	require.Equal(t, 503, e.StatusCode)
}

func TestNetworkError_Defaults(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	e := NetworkError(cause)

	require.Equal(t, 500, e.StatusCode)
	require.False(t, e.Status)
	require.Equal(t, "Network error", e.Tag)
	require.ErrorIs(t, e, cause)
	require.Contains(t, e.Error(), "connection refused")
}

func TestResponseErr(t *testing.T) {
	t.Run("success yields nil", func(t *testing.T) {
		r := &Response[string]{Status: true, Data: "ok"}
		require.NoError(t, r.Err())
	})

	t.Run("failure yields Error with envelope fields", func(t *testing.T) {
		r := &Response[map[string]string]{
			StatusCode: 409,
			Status:     false,
			Message:    "duplicate",
			Error:      "Conflict",
			Data:       map[string]string{"id": "t1"},
		}
		err := r.Err()
		require.Error(t, err)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "duplicate", apiErr.Message)
		require.Equal(t, 409, apiErr.StatusCode)
		require.Equal(t, "Conflict", apiErr.Tag)
		require.JSONEq(t, `{"id":"t1"}`, string(apiErr.Data))
	})
}

func TestMessageFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"session expired", ErrSessionExpired, "session expired, please log in again"},
		{"wrapped session expired", fmt.Errorf("call: %w", ErrSessionExpired), "session expired, please log in again"},
		{"backend message", &Error{Message: "invalid province code", Tag: "Validation error"}, "invalid province code"},
		{"network", NetworkError(errors.New("timeout")), "request failed, please try again"},
		{"unknown", errors.New("boom"), "an unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, MessageFor(tt.err))
		})
	}
}
