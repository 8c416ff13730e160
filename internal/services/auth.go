package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/evizor/console/internal/api"
	"github.com/evizor/console/internal/httpclient"
	"github.com/evizor/console/internal/logging"
	"github.com/evizor/console/internal/models"
	"github.com/evizor/console/internal/session"
)

// ErrRoleNotAllowed is returned when the backend accepts the credentials but
// the account's role has no business in the admin console.
var ErrRoleNotAllowed = errors.New("Unauthorized: only Doctors, Admins and Staff")

// AuthService owns the login, two-factor, logout and password-reset flows.
// It is the only layer besides the refresh cycle that writes the session.
type AuthService struct {
	c    *httpclient.Client
	sess *session.Store
	log  logging.Logger
}

func NewAuthService(c *httpclient.Client, sess *session.Store, log logging.Logger) *AuthService {
	return &AuthService{c: c, sess: sess, log: log}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type twoFARequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,numeric,len=6"`
}

type loginData struct {
	AccessToken      string       `json:"accessToken"`
	RefreshToken     string       `json:"refreshToken"`
	User             *models.User `json:"user"`
	ProfileCompleted bool         `json:"profileCompleted"`
	IsTwoFAEnabled   bool         `json:"isTwoFAEnabled"`
}

// LoginResult reports either an established session (User set) or a pending
// two-factor gate (TwoFARequired set, carrying the submitted email).
type LoginResult struct {
	TwoFARequired bool
	Email         string
	User          *models.User
}

// Login authenticates against the backend. Accounts gated behind two-factor
// produce a TwoFARequired result without touching the session. Accounts
// whose role is not allowed in the console are rejected client-side even
// though the backend accepted the credentials, and the granted tokens are
// revoked via logout.
func (s *AuthService) Login(ctx context.Context, email, password string, rememberMe bool) (*LoginResult, error) {
	req := loginRequest{Email: email, Password: password}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	env, err := httpclient.Do[loginData](ctx, s.c, http.MethodPost, "/auth/login", req, httpclient.SkipAuth())
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}

	if env.Data.IsTwoFAEnabled && env.Data.AccessToken == "" {
		s.log.Info(ctx, "two-factor required", "email", email)
		return &LoginResult{TwoFARequired: true, Email: email}, nil
	}

	return s.establishSession(ctx, env.Data, rememberMe)
}

// VerifyTwoFA completes a pending two-factor gate.
func (s *AuthService) VerifyTwoFA(ctx context.Context, email, code string, rememberMe bool) (*LoginResult, error) {
	req := twoFARequest{Email: email, Code: code}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	env, err := httpclient.Do[loginData](ctx, s.c, http.MethodPost, "/auth/2fa/verify", req, httpclient.SkipAuth())
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}

	return s.establishSession(ctx, env.Data, rememberMe)
}

func (s *AuthService) establishSession(ctx context.Context, d loginData, rememberMe bool) (*LoginResult, error) {
	if d.User == nil || d.AccessToken == "" {
		return nil, &api.Error{
			Message:    "malformed login response",
			StatusCode: http.StatusInternalServerError,
			Status:     false,
			Tag:        "Decode error",
		}
	}

	if !d.User.Role.ConsoleRole() {
		// the backend handed out tokens; revoke them before rejecting
		s.sess.Login(ctx, d.AccessToken, d.RefreshToken, d.User, d.ProfileCompleted, false)
		s.Logout(ctx)
		return nil, ErrRoleNotAllowed
	}

	s.sess.Login(ctx, d.AccessToken, d.RefreshToken, d.User, d.ProfileCompleted, rememberMe)
	s.log.Info(ctx, "logged in", "user_id", d.User.ID, "role", d.User.Role)

	return &LoginResult{User: d.User}, nil
}

// Logout clears the local session. The server-side logout is best effort and
// never blocks local clearing on failure.
func (s *AuthService) Logout(ctx context.Context) {
	if s.sess.IsAuthenticated() {
		if _, err := httpclient.Do[any](ctx, s.c, http.MethodPost, "/auth/logout", nil, httpclient.SkipRefresh()); err != nil {
			s.log.Warn(ctx, "server-side logout failed", "error", err)
		}
	}
	s.sess.Logout(ctx)
}

// ForgotPassword triggers the backend password-reset email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	env, err := httpclient.Do[any](ctx, s.c, http.MethodPost, "/auth/forgot-password",
		map[string]string{"email": email}, httpclient.SkipAuth())
	if err != nil {
		return err
	}
	return env.Err()
}
