package session

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkrasnovs/launchboard/internal/auth"
	"github.com/dkrasnovs/launchboard/internal/common"
	"github.com/dkrasnovs/launchboard/internal/logging"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE app_state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func newManager(t *testing.T, db *sql.DB) *Manager {
	t.Helper()
	return NewManager(db, auth.NewCredentialStore(), auth.NewTokenIssuer([]byte("test-secret")), logging.NewJSONLogger(io.Discard))
}

func TestSignUp_EstablishesSession(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, setupDB(t))

	require.NoError(t, m.SignUp(ctx, "Alice", "alice@example.com", "s3cret"))

	s := m.Current()
	require.True(t, s.IsAuthenticated)
	require.NotNil(t, s.User)
	require.Equal(t, "alice@example.com", s.User.Email)
	require.NotEmpty(t, s.Token)
}

func TestSignUp_DuplicateLeavesSessionUntouched(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, setupDB(t))

	require.NoError(t, m.SignUp(ctx, "Alice", "alice@example.com", "s3cret"))
	require.NoError(t, m.SignOut(ctx))

	err := m.SignUp(ctx, "Other", "alice@example.com", "other")
	require.ErrorIs(t, err, common.ErrDuplicateUser)
	require.False(t, m.IsAuthenticated())
}

func TestSignIn_WrongPassword(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, setupDB(t))

	require.NoError(t, m.SignUp(ctx, "Alice", "alice@example.com", "s3cret"))
	require.NoError(t, m.SignOut(ctx))

	err := m.SignIn(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	require.False(t, m.IsAuthenticated())
}

func TestSignOut_ClearsEverything(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, setupDB(t))

	require.NoError(t, m.SignUp(ctx, "Alice", "alice@example.com", "s3cret"))
	require.NoError(t, m.SignOut(ctx))

	s := m.Current()
	require.False(t, s.IsAuthenticated)
	require.Nil(t, s.User)
	require.Empty(t, s.Token)

	// idempotent
	require.NoError(t, m.SignOut(ctx))
	require.False(t, m.IsAuthenticated())
}

func TestRestore_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	first := newManager(t, db)
	require.NoError(t, first.SignUp(ctx, "Alice", "alice@example.com", "s3cret"))

	second := newManager(t, db)
	require.NoError(t, second.Restore(ctx))

	s := second.Current()
	require.True(t, s.IsAuthenticated)
	require.NotNil(t, s.User)
	require.Equal(t, "alice@example.com", s.User.Email)
	require.NotEmpty(t, s.Token)
}

func TestRestore_RegistrySurvivesSignOut(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	first := newManager(t, db)
	require.NoError(t, first.SignUp(ctx, "Alice", "alice@example.com", "s3cret"))
	require.NoError(t, first.SignOut(ctx))

	second := newManager(t, db)
	require.NoError(t, second.Restore(ctx))
	require.False(t, second.IsAuthenticated())

	// the registry grew monotonically: old credentials still work
	require.NoError(t, second.SignIn(ctx, "alice@example.com", "s3cret"))
	require.True(t, second.IsAuthenticated())
}

func TestRestore_EmptyStoreStaysSignedOut(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, setupDB(t))

	require.NoError(t, m.Restore(ctx))
	require.False(t, m.IsAuthenticated())
}
