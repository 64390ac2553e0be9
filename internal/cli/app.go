// Package cli wires the application for the cobra commands and the
// interactive omnibox.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bnema/localport/internal/application/usecase"
	"github.com/bnema/localport/internal/cli/styles"
	"github.com/bnema/localport/internal/domain/build"
	"github.com/bnema/localport/internal/infrastructure/config"
	"github.com/bnema/localport/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/localport/internal/logging"
)

// Options tune how the app is built for one command.
type Options struct {
	// Verbose mirrors logs to stderr. Interactive commands leave it off so
	// log lines do not tear the terminal UI.
	Verbose bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	db      *sqlite.LazyDB
	History *usecase.PortHistoryUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, loadErr := loadConfig()

	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: "15:04:05",
		},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			Dir:           cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAge,
			WriteToStderr: opts.Verbose,
		},
	)
	ctx := logging.WithContext(context.Background(), logger)
	log := logging.FromContext(ctx)

	if logErr != nil {
		log.Warn().Err(logErr).Msg("file logging disabled")
	}
	if loadErr != nil {
		// Invalid files must not lock the user out; defaults still work.
		fmt.Fprintf(os.Stderr, "localport: %v (using defaults)\n", loadErr)
		log.Warn().Err(loadErr).Msg("failed to load config, using defaults")
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	store := sqlite.NewKeyValueStore(db)

	log.Debug().Str("db_path", cfg.Database.Path).Msg("storage ready")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(cfg),
		db:         db,
		History:    usecase.NewPortHistoryUseCase(store, cfg.Omnibox.MaxSuggestions),
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// StorageStatus describes the port history database.
type StorageStatus struct {
	Path    string
	Created bool
	Version int64
}

// Storage reports where the history lives and its schema version. A missing
// database is reported, not created.
func (a *App) Storage(ctx context.Context) (StorageStatus, error) {
	status := StorageStatus{Path: a.db.Path()}
	version, created, err := a.db.SchemaVersion(ctx)
	if err != nil {
		return status, err
	}
	status.Created, status.Version = created, version
	return status, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Stdout is where commands print results.
func (*App) Stdout() io.Writer {
	return os.Stdout
}

// loadConfig loads configuration from standard locations, returning defaults
// alongside the error when that fails.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, withDatabasePath(config.DefaultConfig()), fmt.Errorf("failed to create config manager: %w", err)
	}

	if err := mgr.Load(); err != nil {
		return mgr, withDatabasePath(mgr.Get()), err
	}

	return mgr, mgr.Get(), nil
}

func withDatabasePath(cfg *config.Config) *config.Config {
	if cfg.Database.Path == "" {
		if path, err := config.GetDatabaseFile(); err == nil {
			cfg.Database.Path = path
		}
	}
	return cfg
}
