// Package session holds the current authenticated identity and persists it
// (together with the whole user registry) across restarts.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dkrasnovs/launchboard/internal/auth"
	"github.com/dkrasnovs/launchboard/internal/dbx"
	"github.com/dkrasnovs/launchboard/internal/logging"
	"github.com/dkrasnovs/launchboard/internal/models"
	"github.com/dkrasnovs/launchboard/internal/repositories/state"
)

const (
	// storageKey names the persisted session blob.
	storageKey = "auth-storage"
	savedAtKey = "saved_at"
)

// Session is the client-local record of who is currently logged in.
// Invariant: IsAuthenticated == (User != nil && Token != "").
type Session struct {
	User            *models.SafeUser `json:"user"`
	IsAuthenticated bool             `json:"isAuthenticated"`
	Token           string           `json:"token"`
}

// persistedState is the durable blob: the session plus the full registered
// user registry. Keeping hashed credentials client-side is a deliberate,
// demo-grade weakness carried over from the system this replaces.
type persistedState struct {
	User            *models.SafeUser `json:"user"`
	IsAuthenticated bool             `json:"isAuthenticated"`
	Token           string           `json:"token"`
	RegisteredUsers []models.User    `json:"registeredUsers"`
}

// Manager owns the session state. All mutations go through SignIn, SignUp,
// and SignOut; each successful mutation is written to durable storage before
// it becomes visible.
type Manager struct {
	creds  *auth.CredentialStore
	tokens *auth.TokenIssuer
	db     *sql.DB
	log    logging.Logger

	mu      sync.Mutex
	current Session
}

func NewManager(db *sql.DB, creds *auth.CredentialStore, tokens *auth.TokenIssuer, log logging.Logger) *Manager {
	return &Manager{creds: creds, tokens: tokens, db: db, log: log}
}

// Restore rehydrates the session and the user registry from the persisted
// blob. A missing blob leaves the manager signed out. Called once at startup.
func (m *Manager) Restore(ctx context.Context) error {
	repo := state.NewSQLiteRepository(m.db)

	blob, err := repo.Get(ctx, storageKey)
	if err != nil {
		return fmt.Errorf("reading session blob: %w", err)
	}
	if blob == nil {
		m.log.Debug(ctx, "no persisted session found")
		return nil
	}

	var ps persistedState
	if err := json.Unmarshal(blob, &ps); err != nil {
		return fmt.Errorf("decoding session blob: %w", err)
	}

	m.creds.Restore(ps.RegisteredUsers)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = Session{User: ps.User, Token: ps.Token}
	m.current.IsAuthenticated = ps.IsAuthenticated && ps.User != nil && ps.Token != ""
	return nil
}

// SignIn authenticates against the credential store, mints a token, and
// atomically establishes the session. On failure the session is untouched
// and the error propagates to the caller.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	safe, err := m.creds.Authenticate(email, password)
	if err != nil {
		return err
	}

	token, err := m.tokens.Mint(safe.ID)
	if err != nil {
		return err
	}

	return m.update(ctx, Session{User: &safe, IsAuthenticated: true, Token: token})
}

// SignUp registers a new user and immediately establishes an authenticated
// session for it. A duplicate email propagates and leaves the session as-is.
func (m *Manager) SignUp(ctx context.Context, name, email, password string) error {
	safe, err := m.creds.Register(name, email, password)
	if err != nil {
		return err
	}

	token, err := m.tokens.Mint(safe.ID)
	if err != nil {
		return err
	}

	return m.update(ctx, Session{User: &safe, IsAuthenticated: true, Token: token})
}

// SignOut unconditionally clears the session. Idempotent.
func (m *Manager) SignOut(ctx context.Context) error {
	return m.update(ctx, Session{})
}

// Current returns a copy of the session state.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *Manager) IsAuthenticated() bool {
	return m.Current().IsAuthenticated
}

// update persists the new session first, then makes it visible, so a failed
// write never leaves memory and disk disagreeing.
func (m *Manager) update(ctx context.Context, next Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.persist(ctx, next); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	m.current = next
	return nil
}

func (m *Manager) persist(ctx context.Context, s Session) error {
	blob, err := json.Marshal(persistedState{
		User:            s.User,
		IsAuthenticated: s.IsAuthenticated,
		Token:           s.Token,
		RegisteredUsers: m.creds.Snapshot(),
	})
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, storageKey, blob); err != nil {
			return err
		}
		return repo.Set(ctx, savedAtKey, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
}
