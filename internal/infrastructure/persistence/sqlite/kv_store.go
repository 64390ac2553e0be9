package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/logging"
)

const (
	getValueQuery = `SELECT value FROM kv_store WHERE key = ?`
	setValueQuery = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

type kvStore struct {
	provider port.DatabaseProvider
}

// NewKeyValueStore creates a SQLite-backed key-value store.
func NewKeyValueStore(provider port.DatabaseProvider) port.KeyValueStore {
	return &kvStore{provider: provider}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", key).Msg("reading value")

	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, false, err
	}

	var value []byte
	err = db.QueryRowContext(ctx, getValueQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", key).Int("size", len(value)).Msg("writing value")

	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	if value == nil {
		value = []byte{}
	}
	if _, err := db.ExecContext(ctx, setValueQuery, key, value); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
