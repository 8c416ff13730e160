// Package session is the single source of truth for "who is logged in and
// with what credentials". The HTTP client reads tokens from here at send
// time; only the login and refresh flows may write them.
package session

import (
	"context"
	"sync"

	"github.com/evizor/console/internal/logging"
	"github.com/evizor/console/internal/models"
)

type Store struct {
	mu               sync.RWMutex
	accessToken      string
	refreshToken     string
	user             *models.User
	profileCompleted bool
	remembered       bool

	persister Persister
	log       logging.Logger
}

type Option func(*Store)

// WithPersister enables remember-me persistence across restarts.
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

func WithLogger(log logging.Logger) Option {
	return func(s *Store) { s.log = log }
}

func NewStore(opts ...Option) *Store {
	s := &Store{log: logging.NewNopLogger()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Login unconditionally overwrites the session state. When rememberMe is set
// and a persister is configured, the session survives application restarts;
// otherwise it is memory-only.
func (s *Store) Login(ctx context.Context, accessToken, refreshToken string, user *models.User, profileCompleted, rememberMe bool) {
	s.mu.Lock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	s.user = user
	s.profileCompleted = profileCompleted
	s.remembered = rememberMe && s.persister != nil
	s.mu.Unlock()

	if rememberMe {
		s.persist(ctx)
	} else {
		s.clearPersisted(ctx)
	}
}

// SetTokens is the narrow mutator used by the refresh cycle. The cached user
// is left untouched.
func (s *Store) SetTokens(ctx context.Context, accessToken, refreshToken string) {
	s.mu.Lock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	remembered := s.remembered
	s.mu.Unlock()

	if remembered {
		s.persist(ctx)
	}
}

// Logout clears tokens and user atomically. It performs no navigation and
// calls no backend endpoint; server-side logout is a higher layer's concern.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.accessToken = ""
	s.refreshToken = ""
	s.user = nil
	s.profileCompleted = false
	s.remembered = false
	s.mu.Unlock()

	s.clearPersisted(ctx)
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) ProfileCompleted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profileCompleted
}

// IsAuthenticated is true iff an access token is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != ""
}
