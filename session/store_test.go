package session_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-tasks/auth"
	"github.com/goliatone/go-tasks/session"
)

func tokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "go-tasks", "token")
}

func issueToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	svc := auth.NewTokenService([]byte("test-signing-key"), 168, "go-tasks", nil, nil)
	token, err := svc.SignClaims(&auth.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "go-tasks",
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UID:      uuid.NewString(),
		UserMail: "ann@x.com",
		FullName: "Ann",
		Tier:     auth.UserTypeNormal,
	})
	require.NoError(t, err)
	return token
}

func TestNewStore(t *testing.T) {
	t.Run("absent file yields no session", func(t *testing.T) {
		store, err := session.NewStore(tokenPath(t))
		require.NoError(t, err)

		assert.Nil(t, store.Current())
		assert.Empty(t, store.Token())
	})

	t.Run("garbage file yields no session", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(path, []byte("not a token"), 0o600))

		store, err := session.NewStore(path)
		require.NoError(t, err)
		assert.Nil(t, store.Current())
	})

	t.Run("expired token still decodes", func(t *testing.T) {
		path := tokenPath(t)
		token := issueToken(t, time.Now().Add(-time.Hour))

		store, err := session.NewStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Replace(token))

		reloaded, err := session.NewStore(path)
		require.NoError(t, err)
		require.NotNil(t, reloaded.Current())
		assert.Equal(t, "ann@x.com", reloaded.Current().Email())
	})
}

func TestReplace(t *testing.T) {
	path := tokenPath(t)
	token := issueToken(t, time.Now().Add(time.Hour))

	store, err := session.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Replace(token))

	assert.Equal(t, token, store.Token())
	require.NotNil(t, store.Current())
	assert.Equal(t, "Ann", store.Current().Name())
	assert.Equal(t, auth.UserTypeNormal, store.Current().UserType())

	t.Run("persists across stores", func(t *testing.T) {
		reloaded, err := session.NewStore(path)
		require.NoError(t, err)

		assert.Equal(t, token, reloaded.Token())
		require.NotNil(t, reloaded.Current())
		assert.Equal(t, store.Current().UserID(), reloaded.Current().UserID())
	})

	t.Run("swaps the previous session wholesale", func(t *testing.T) {
		next := issueToken(t, time.Now().Add(2*time.Hour))
		require.NoError(t, store.Replace(next))

		assert.Equal(t, next, store.Token())
		assert.NotEqual(t, token, store.Token())
	})

	t.Run("rejects undecodable tokens and keeps the session", func(t *testing.T) {
		before := store.Token()
		assert.Error(t, store.Replace("not a token"))
		assert.Equal(t, before, store.Token())
		assert.NotNil(t, store.Current())
	})
}

func TestClear(t *testing.T) {
	path := tokenPath(t)

	store, err := session.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Replace(issueToken(t, time.Now().Add(time.Hour))))

	require.NoError(t, store.Clear())
	assert.Nil(t, store.Current())
	assert.Empty(t, store.Token())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	t.Run("tolerates a missing file", func(t *testing.T) {
		assert.NoError(t, store.Clear())
	})
}
