package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/evizor/console/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Persister stores an opaque session blob on the device.
// Load returns (nil, nil) when nothing is stored.
type Persister interface {
	Save(ctx context.Context, blob []byte) error
	Load(ctx context.Context) ([]byte, error)
	Clear(ctx context.Context) error
}

type persistedSession struct {
	AccessToken      string       `json:"accessToken"`
	RefreshToken     string       `json:"refreshToken"`
	User             *models.User `json:"user"`
	ProfileCompleted bool         `json:"profileCompleted"`
	SavedAt          time.Time    `json:"savedAt"`
}

// Restore loads a remembered session from the persister, if any. A session
// whose refresh token is already expired is discarded: it could never be
// recovered by the refresh cycle.
func (s *Store) Restore(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}

	blob, err := s.persister.Load(ctx)
	if err != nil {
		return err
	}
	if blob == nil {
		return nil
	}

	var ps persistedSession
	if err := json.Unmarshal(blob, &ps); err != nil {
		s.log.Warn(ctx, "discarding unreadable remembered session", "error", err)
		return s.persister.Clear(ctx)
	}

	if ps.AccessToken == "" || tokenExpired(ps.RefreshToken) {
		s.log.Info(ctx, "remembered session expired, discarding")
		return s.persister.Clear(ctx)
	}

	s.mu.Lock()
	s.accessToken = ps.AccessToken
	s.refreshToken = ps.RefreshToken
	s.user = ps.User
	s.profileCompleted = ps.ProfileCompleted
	s.remembered = true
	s.mu.Unlock()

	return nil
}

// tokenExpired reports whether token is a JWT with an exp claim in the past.
// Opaque (non-JWT) tokens and tokens without exp are assumed usable; the
// refresh call itself is the authority. No signature verification happens
// here, the claim is only read.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (s *Store) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}

	s.mu.RLock()
	ps := persistedSession{
		AccessToken:      s.accessToken,
		RefreshToken:     s.refreshToken,
		User:             s.user,
		ProfileCompleted: s.profileCompleted,
		SavedAt:          time.Now(),
	}
	s.mu.RUnlock()

	blob, err := json.Marshal(ps)
	if err != nil {
		s.log.Error(ctx, "failed to marshal session", "error", err)
		return
	}
	if err := s.persister.Save(ctx, blob); err != nil {
		s.log.Error(ctx, "failed to persist session", "error", err)
	}
}

func (s *Store) clearPersisted(ctx context.Context) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear persisted session", "error", err)
	}
}
