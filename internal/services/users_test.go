package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evizor/console/internal/httpclient"
	"github.com/evizor/console/internal/models"
	"github.com/evizor/console/internal/session"
	"github.com/stretchr/testify/require"
)

func TestUserGet(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/u1", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		okEnvelope(w, models.User{ID: "u1", Email: "doc@evizor.test", Role: models.RoleDoctor})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	svc := NewUserService(httpclient.New(srv.URL, session.NewStore()))

	u, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "doc@evizor.test", u.Email)
	require.Equal(t, models.RoleDoctor, u.Role)
}

func TestUserGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"statusCode": 404,
			"status":     false,
			"message":    "user not found",
			"error":      "Not Found",
		})
	}))
	t.Cleanup(srv.Close)

	svc := NewUserService(httpclient.New(srv.URL, session.NewStore()))

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "user not found")
}
