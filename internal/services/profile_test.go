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

func newProfileBackend(t *testing.T) (*http.ServeMux, *ProfileService) {
	t.Helper()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return mux, NewProfileService(httpclient.New(srv.URL, session.NewStore()))
}

func okEnvelope(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"statusCode": 200,
		"status":     true,
		"message":    "ok",
		"data":       data,
	})
}

func TestGetAvailability(t *testing.T) {
	mux, svc := newProfileBackend(t)
	mux.HandleFunc("/profile/availability", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		okEnvelope(w, []models.AvailabilitySlot{
			{ID: "s1", DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		})
	})

	slots, err := svc.GetAvailability(context.Background())
	require.NoError(t, err)
	require.Len(t, slots, 1)
	require.Equal(t, "09:00", slots[0].StartTime)
}

func TestSetAvailability_SendsFullSchedule(t *testing.T) {
	mux, svc := newProfileBackend(t)

	var got []models.AvailabilitySlot
	mux.HandleFunc("/profile/availability", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		okEnvelope(w, nil)
	})

	slots := []models.AvailabilitySlot{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 3, StartTime: "14:00", EndTime: "17:00"},
	}
	require.NoError(t, svc.SetAvailability(context.Background(), slots))
	require.Equal(t, slots, got)
}

func TestGetProfessionalProfile(t *testing.T) {
	mux, svc := newProfileBackend(t)
	mux.HandleFunc("/profile/professional", func(w http.ResponseWriter, r *http.Request) {
		okEnvelope(w, models.ProfessionalProfile{
			UserID:       "u1",
			LicenseNo:    "MD-1234",
			SpecialtyIDs: []string{"sp1"},
			Completed:    true,
		})
	})

	p, err := svc.GetProfessionalProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "MD-1234", p.LicenseNo)
	require.True(t, p.Completed)
}

func TestUpdateProfessionalProfile(t *testing.T) {
	mux, svc := newProfileBackend(t)

	var got UpdateProfessionalProfileRequest
	mux.HandleFunc("/profile/professional", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		okEnvelope(w, models.ProfessionalProfile{UserID: "u1", Bio: got.Bio})
	})

	p, err := svc.UpdateProfessionalProfile(context.Background(), UpdateProfessionalProfileRequest{
		Bio:          "20 years of family medicine",
		SpecialtyIDs: []string{"sp1", "sp2"},
	})
	require.NoError(t, err)
	require.Equal(t, "20 years of family medicine", p.Bio)
	require.Equal(t, []string{"sp1", "sp2"}, got.SpecialtyIDs)
}

func TestGetAvailability_BackendFailure(t *testing.T) {
	mux, svc := newProfileBackend(t)
	mux.HandleFunc("/profile/availability", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"statusCode": 403,
			"status":     false,
			"message":    "profile not yet verified",
			"error":      "Forbidden",
		})
	})

	_, err := svc.GetAvailability(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "profile not yet verified")
}
