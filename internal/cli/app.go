// Package cli is the interactive REPL for launchboard. It is a thin consumer
// of the core: it reads session/store state and invokes their actions, but
// holds no logic of its own.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dkrasnovs/launchboard/internal/auth"
	"github.com/dkrasnovs/launchboard/internal/config"
	"github.com/dkrasnovs/launchboard/internal/logging"
	"github.com/dkrasnovs/launchboard/internal/repositories/state"
	"github.com/dkrasnovs/launchboard/internal/session"
	"github.com/dkrasnovs/launchboard/internal/spacex"
	"github.com/dkrasnovs/launchboard/internal/store"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Manager
	store   *store.Store
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewJSONLogger(os.Stderr)

	db, err := state.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("state database init: %w", err)
	}

	creds := auth.NewCredentialStore()
	tokens := auth.NewTokenIssuer([]byte(c.TokenSecret))

	sess := session.NewManager(db, creds, tokens, log)
	if err := sess.Restore(ctx); err != nil {
		// corrupt blob: start signed out
		log.Warn(ctx, "could not restore session", "err", err)
	}

	client := spacex.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	st := store.New(client, c.QueryLimit, log)

	return &App{
		config:  c,
		log:     log,
		db:      db,
		session: sess,
		store:   st,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Println("Welcome to launchboard (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	s := a.session.Current()
	if s.User == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", s.User.Email)
}
