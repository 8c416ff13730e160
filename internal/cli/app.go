// Package cli is the interactive console: a REPL over the admin surface of
// the eVizor backend, with role-aware commands and a live queue view.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strconv"

	"github.com/evizor/console/internal/config"
	"github.com/evizor/console/internal/devstore"
	"github.com/evizor/console/internal/httpclient"
	"github.com/evizor/console/internal/logging"
	"github.com/evizor/console/internal/models"
	"github.com/evizor/console/internal/services"
	"github.com/evizor/console/internal/session"
	"github.com/evizor/console/internal/stores"

	_ "modernc.org/sqlite"
)

const kvPageSize = "prefs.page_size"

type App struct {
	config *config.Config
	log    logging.Logger
	reader *bufio.Reader

	db   *sql.DB
	kv   *devstore.KV
	sess *session.Store

	auth    *services.AuthService
	users   *services.UserService
	profile *services.ProfileService

	tenants        *stores.TenantStore
	staff          *stores.StaffStore
	specialties    *stores.SpecialtyStore
	symptoms       *stores.SymptomStore
	pharmacies     *stores.PharmacyStore
	appointments   *stores.AppointmentStore
	qualifications *stores.QualificationStore
	userStore      *stores.UserStore
	verifications  *stores.VerificationStore

	pageSize int
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewText(os.Stderr, slog.LevelInfo)

	db, err := devstore.Open(ctx, c.DeviceDBPath)
	if err != nil {
		log.Error(ctx, "failed to open device store", "error", err)
		return nil, err
	}
	kv := devstore.NewKV(db)

	sess := session.NewStore(
		session.WithPersister(session.NewSealedPersister(kv)),
		session.WithLogger(log),
	)
	if err := sess.Restore(ctx); err != nil {
		log.Warn(ctx, "failed to restore remembered session", "error", err)
	}

	opts := []httpclient.Option{
		httpclient.WithLogger(log),
		httpclient.WithTimeout(c.RequestTimeout),
	}
	if c.RequestsPerSecond > 0 {
		opts = append(opts, httpclient.WithRateLimit(c.RequestsPerSecond, 1))
	}
	hc := httpclient.New(c.APIBaseURL, sess, opts...)

	profile := services.NewProfileService(hc)

	a := &App{
		config:  c,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		db:      db,
		kv:      kv,
		sess:    sess,
		auth:    services.NewAuthService(hc, sess, log),
		users:   services.NewUserService(hc),
		profile: profile,

		tenants:        stores.NewTenantStore(services.NewTenantService(hc), log),
		staff:          stores.NewStaffStore(services.NewStaffService(hc), log),
		specialties:    stores.NewSpecialtyStore(services.NewSpecialtyService(hc), log),
		symptoms:       stores.NewSymptomStore(services.NewSymptomService(hc), log),
		pharmacies:     stores.NewPharmacyStore(services.NewPharmacyService(hc), log),
		appointments:   stores.NewAppointmentStore(services.NewAppointmentService(hc), log),
		qualifications: stores.NewQualificationStore(profile.Qualifications, log),
		userStore:      stores.NewUserStore(services.NewUserService(hc), log),
		verifications:  stores.NewVerificationStore(profile, log),

		pageSize: 20,
	}
	a.loadPrefs(ctx)

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.sess.IsAuthenticated()
}

func (a *App) role() models.Role {
	if u := a.sess.User(); u != nil {
		return u.Role
	}
	return ""
}

func (a *App) getStatus() string {
	u := a.sess.User()
	if u == nil {
		return "(not logged in)"
	}
	return "(" + u.Email + " " + string(u.Role) + ")"
}

// requireLogin prints a hint and returns false when nobody is logged in.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn("Log in first.")
	return false
}

// requireRole prints a refusal and returns false when the current role is not
// in the allowed set.
func (a *App) requireRole(roles ...models.Role) bool {
	r := a.role()
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	printlnFn("This command is not available for your role.")
	return false
}

func (a *App) loadPrefs(ctx context.Context) {
	v, err := a.kv.Get(ctx, kvPageSize)
	if err != nil || v == nil {
		return
	}
	if n, err := strconv.Atoi(string(v)); err == nil && n > 0 {
		a.pageSize = n
	}
}
