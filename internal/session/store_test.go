package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/evizor/console/internal/devstore"
	"github.com/evizor/console/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

type memPersister struct {
	blob    []byte
	saves   int
	clears  int
	loadErr error
}

func (m *memPersister) Save(ctx context.Context, blob []byte) error {
	m.blob = append([]byte(nil), blob...)
	m.saves++
	return nil
}

func (m *memPersister) Load(ctx context.Context) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.blob, nil
}

func (m *memPersister) Clear(ctx context.Context) error {
	m.blob = nil
	m.clears++
	return nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestStore_AuthInvariant(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.False(t, s.IsAuthenticated())

	s.Login(ctx, "A1", "R1", &models.User{ID: "u1", Role: models.RoleAdmin}, true, false)
	require.True(t, s.IsAuthenticated())
	require.Equal(t, "A1", s.AccessToken())
	require.Equal(t, "R1", s.RefreshToken())
	require.Equal(t, "u1", s.User().ID)

	s.Logout(ctx)
	require.False(t, s.IsAuthenticated())
	require.Empty(t, s.AccessToken())
	require.Empty(t, s.RefreshToken())
	require.Nil(t, s.User())
}

func TestStore_SetTokensKeepsUser(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Login(ctx, "A1", "R1", &models.User{ID: "u1"}, true, false)

	s.SetTokens(ctx, "A2", "R2")

	require.Equal(t, "A2", s.AccessToken())
	require.Equal(t, "R2", s.RefreshToken())
	require.NotNil(t, s.User())
	require.Equal(t, "u1", s.User().ID)
}

func TestStore_RememberMePersistsAndRestores(t *testing.T) {
	ctx := context.Background()
	p := &memPersister{}

	s := NewStore(WithPersister(p))
	s.Login(ctx, "A1", signedToken(t, time.Now().Add(time.Hour)), &models.User{ID: "u1", Email: "a@evizor.test"}, true, true)
	require.Equal(t, 1, p.saves)

	restored := NewStore(WithPersister(p))
	require.NoError(t, restored.Restore(ctx))

	require.True(t, restored.IsAuthenticated())
	require.Equal(t, "A1", restored.AccessToken())
	require.Equal(t, "u1", restored.User().ID)
	require.True(t, restored.ProfileCompleted())
}

func TestStore_NoRememberMeClearsPersisted(t *testing.T) {
	ctx := context.Background()
	p := &memPersister{}

	s := NewStore(WithPersister(p))
	s.Login(ctx, "A1", "R1", &models.User{ID: "u1"}, false, false)

	require.Nil(t, p.blob)
	require.GreaterOrEqual(t, p.clears, 1)
}

func TestStore_RestoreDiscardsExpiredRefreshToken(t *testing.T) {
	ctx := context.Background()
	p := &memPersister{}

	s := NewStore(WithPersister(p))
	s.Login(ctx, "A1", signedToken(t, time.Now().Add(-time.Hour)), &models.User{ID: "u1"}, false, true)

	restored := NewStore(WithPersister(p))
	require.NoError(t, restored.Restore(ctx))

	require.False(t, restored.IsAuthenticated())
	require.Nil(t, p.blob)
}

func TestStore_SetTokensRepersistsRememberedSession(t *testing.T) {
	ctx := context.Background()
	p := &memPersister{}

	s := NewStore(WithPersister(p))
	s.Login(ctx, "A1", signedToken(t, time.Now().Add(time.Hour)), &models.User{ID: "u1"}, false, true)
	s.SetTokens(ctx, "A2", "R2")

	require.Equal(t, 2, p.saves)

	restored := NewStore(WithPersister(p))
	require.NoError(t, restored.Restore(ctx))
	require.Equal(t, "A2", restored.AccessToken())
}

func TestSealedPersister_RoundTrip(t *testing.T) {
	ctx := context.Background()

	db, err := devstore.Open(ctx, filepath.Join(t.TempDir(), "console.db"))
	require.NoError(t, err)
	defer db.Close()

	p := NewSealedPersister(devstore.NewKV(db))

	blob, err := p.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, blob)

	require.NoError(t, p.Save(ctx, []byte(`{"accessToken":"A1"}`)))

	blob, err = p.Load(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `{"accessToken":"A1"}`, string(blob))

	require.NoError(t, p.Clear(ctx))
	blob, err = p.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, blob)
}
