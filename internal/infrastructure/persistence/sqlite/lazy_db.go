package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/logging"
)

// LazyDB opens the database on first access, so commands that never touch
// the port history (about, config) never pay for WASM compilation.
type LazyDB struct {
	dbPath string
	db     *sql.DB
	err    error
	once   sync.Once
	mu     sync.RWMutex
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a lazy provider for dbPath.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the connection, opening it on the first call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("lazy database initialization starting")

		db, err := NewConnection(ctx, l.dbPath)
		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()

		if err != nil {
			log.Error().Err(err).Msg("lazy database initialization failed")
		}
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close closes the connection if it was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// IsInitialized reports whether the connection has been opened.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// SchemaVersion returns the applied migration version. It reports false,
// without creating anything, when the database file does not exist yet.
func (l *LazyDB) SchemaVersion(ctx context.Context) (int64, bool, error) {
	if !l.IsInitialized() {
		if _, err := os.Stat(l.dbPath); errors.Is(err, fs.ErrNotExist) {
			return 0, false, nil
		}
	}
	db, err := l.DB(ctx)
	if err != nil {
		return 0, false, err
	}
	version, err := GetMigrationStatus(ctx, db)
	if err != nil {
		return 0, true, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, true, nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}
