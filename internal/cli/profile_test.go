package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evizor/console/internal/httpclient"
	"github.com/evizor/console/internal/logging"
	"github.com/evizor/console/internal/models"
	"github.com/evizor/console/internal/services"
	"github.com/evizor/console/internal/session"
	"github.com/stretchr/testify/require"
)

func testAppWithBackend(t *testing.T, role models.Role, mux *http.ServeMux) *App {
	t.Helper()

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	sess := session.NewStore()
	if role != "" {
		sess.Login(context.Background(), "A1", "R1",
			&models.User{ID: "u1", Email: "u@evizor.test", Role: role}, true, false)
	}
	hc := httpclient.New(srv.URL, sess)

	return &App{
		sess:     sess,
		log:      logging.NewNopLogger(),
		reader:   bufio.NewReader(strings.NewReader("")),
		pageSize: 20,
		profile:  services.NewProfileService(hc),
		users:    services.NewUserService(hc),
	}
}

func okBody(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"statusCode": 200,
		"status":     true,
		"message":    "ok",
		"data":       data,
	})
}

// stubAnswers replaces the interactive text prompt with canned answers.
func stubAnswers(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", nil
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func TestAvailabilityList(t *testing.T) {
	lines := capturePrintln(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/profile/availability", func(w http.ResponseWriter, r *http.Request) {
		okBody(w, []models.AvailabilitySlot{{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"}})
	})
	a := testAppWithBackend(t, models.RoleDoctor, mux)

	require.NoError(t, a.Availability(context.Background(), []string{"list"}))
	require.Contains(t, (*lines)[len(*lines)-1], "Mon")
	require.Contains(t, (*lines)[len(*lines)-1], "09:00-12:00")
}

func TestAvailabilitySet_ReplacesSchedule(t *testing.T) {
	capturePrintln(t)
	stubAnswers(t, "1", "09:00", "12:00", "")

	var got []models.AvailabilitySlot
	mux := http.NewServeMux()
	mux.HandleFunc("/profile/availability", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		okBody(w, nil)
	})
	a := testAppWithBackend(t, models.RoleDoctor, mux)

	require.NoError(t, a.Availability(context.Background(), []string{"set"}))
	require.Equal(t, []models.AvailabilitySlot{{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"}}, got)
}

func TestAvailability_RefusedForStaffRole(t *testing.T) {
	lines := capturePrintln(t)
	a := testApp(models.RoleStaff)

	require.NoError(t, a.Availability(context.Background(), []string{"list"}))
	require.Contains(t, (*lines)[len(*lines)-1], "not available for your role")
}

func TestProfileShow(t *testing.T) {
	lines := capturePrintln(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/profile/professional", func(w http.ResponseWriter, r *http.Request) {
		okBody(w, models.ProfessionalProfile{UserID: "u1", LicenseNo: "MD-1234", Completed: true})
	})
	a := testAppWithBackend(t, models.RoleDoctor, mux)

	require.NoError(t, a.Profile(context.Background(), []string{"show"}))
	require.Contains(t, strings.Join(*lines, "\n"), "MD-1234")
}

func TestProfileUpdate_SendsChanges(t *testing.T) {
	capturePrintln(t)
	stubAnswers(t, "New bio", "MD-9999", "sp1, sp2", "")

	var got services.UpdateProfessionalProfileRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/profile/professional", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		okBody(w, models.ProfessionalProfile{UserID: "u1"})
	})
	a := testAppWithBackend(t, models.RoleDoctor, mux)

	require.NoError(t, a.Profile(context.Background(), []string{"update"}))
	require.Equal(t, "New bio", got.Bio)
	require.Equal(t, "MD-9999", got.LicenseNo)
	require.Equal(t, []string{"sp1", "sp2"}, got.SpecialtyIDs)
	require.Nil(t, got.Languages)
}

func TestUsersGet(t *testing.T) {
	lines := capturePrintln(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/users/u7", func(w http.ResponseWriter, r *http.Request) {
		okBody(w, models.User{ID: "u7", Email: "target@evizor.test", Role: models.RoleStaff})
	})
	a := testAppWithBackend(t, models.RoleAdmin, mux)

	require.NoError(t, a.Users(context.Background(), []string{"get", "u7"}))
	require.Contains(t, strings.Join(*lines, "\n"), "target@evizor.test")
}
