package adapters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/0xlimon/hyperbolic-story-creator/config"
	_ "modernc.org/sqlite"
)

const credentialSchema = `CREATE TABLE IF NOT EXISTS credentials (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteCredentialStore keeps the credential in a local database file so it survives restarts.
type SQLiteCredentialStore struct {
	logger outbound.LoggerPort
	db     *sql.DB
	key    string
}

func NewSQLiteCredentialStore(ctx context.Context, logger outbound.LoggerPort, storeConfig *config.CredentialStoreConfig) (*SQLiteCredentialStore, error) {
	path := storeConfig.SQLitePath
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create credential store dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping credential store: %w", err)
	}
	if _, err := db.ExecContext(ctx, credentialSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate credential store: %w", err)
	}

	return &SQLiteCredentialStore{
		logger: logger,
		db:     db,
		key:    storeConfig.Key,
	}, nil
}

func (s *SQLiteCredentialStore) Get(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		s.logger.Error(err, "Failed to read the credential")
		return "", err
	}
	return value, nil
}

func (s *SQLiteCredentialStore) Save(ctx context.Context, credential string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO credentials (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.key, credential, time.Now().Unix())
	if err != nil {
		s.logger.Error(err, "Failed to save the credential")
		return err
	}
	return nil
}

func (s *SQLiteCredentialStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, s.key); err != nil {
		s.logger.Error(err, "Failed to delete the credential")
		return err
	}
	return nil
}

func (s *SQLiteCredentialStore) Close() error {
	return s.db.Close()
}
