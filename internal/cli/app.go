package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/airlineempire/cli/internal/config"
	"github.com/airlineempire/cli/internal/game"
	"github.com/airlineempire/cli/internal/logging"
	"github.com/airlineempire/cli/internal/models"
	"github.com/airlineempire/cli/internal/repositories/state"
	"github.com/airlineempire/cli/internal/repositories/users"
	"github.com/airlineempire/cli/internal/services"
	"github.com/airlineempire/cli/internal/storage"
)

// App ties together the session service, the game catalog, and terminal I/O.
type App struct {
	config  *config.Config
	session services.SessionService
	world   *game.Catalog
	chat    *game.ChatRoom
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local store, seeds the demo account, and builds the
// service graph.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	if err := storage.SeedDemoAccount(ctx, db); err != nil {
		log.Error(ctx, "error seeding demo account", "error", err)
		_ = db.Close()
		return nil, err
	}

	session := services.NewSessionService(
		users.NewSQLiteRepository(db),
		state.NewSQLiteRepository(db),
		log,
		cfg.StoreTimeout,
		cfg.SessionTTL,
	)

	return &App{
		config:  cfg,
		session: session,
		world:   game.NewCatalog(),
		chat:    game.NewChatRoom(),
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Close releases the local store handle.
func (a *App) Close() error {
	return a.db.Close()
}

// Session returns the current session snapshot for the REPL gate.
func (a *App) Session() models.Session {
	return a.session.Current()
}

// Run restores the persisted session and enters the REPL. It blocks until
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.Close() }()
	a.Root(ctx)
}
