package credstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/littlerefugees/refugio-cli/internal/client/migrations"
	"github.com/littlerefugees/refugio-cli/internal/client/models"
	"github.com/littlerefugees/refugio-cli/internal/dbx"
)

// SQLiteStore keeps credentials in a local sqlite database, in a two-row
// key/value table. It satisfies Store.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the credentials database at dsn and runs
// the embedded migrations.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open credentials db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migrate credentials db: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStore wraps an already migrated database handle. Used in tests.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete credentials[%s]: %w", key, err)
	}
	return nil
}

// SaveToken stores the bearer token.
func (s *SQLiteStore) SaveToken(ctx context.Context, token string) error {
	return s.set(ctx, tokenKey, []byte(token))
}

// Token returns the stored bearer token, or "" when none is stored.
func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	value, err := s.get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// RemoveToken deletes the stored token. No-op when absent.
func (s *SQLiteStore) RemoveToken(ctx context.Context) error {
	return s.delete(ctx, tokenKey)
}

// SaveUser stores the user profile as JSON.
func (s *SQLiteStore) SaveUser(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return s.set(ctx, userKey, data)
}

// User returns the cached user profile. A missing row or an undecodable
// payload both read as (nil, nil): corrupt persisted state degrades to
// "no user" instead of failing startup.
func (s *SQLiteStore) User(ctx context.Context) (*models.User, error) {
	value, err := s.get(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if len(value) == 0 {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(value, &user); err != nil {
		return nil, nil
	}
	return &user, nil
}

// RemoveUser deletes the cached user. No-op when absent.
func (s *SQLiteStore) RemoveUser(ctx context.Context) error {
	return s.delete(ctx, userKey)
}

// Clear removes both the token and the user in a single transaction.
// Idempotent: clearing an empty store succeeds.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, tokenKey); err != nil {
			return fmt.Errorf("failed to clear token: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, userKey); err != nil {
			return fmt.Errorf("failed to clear user: %w", err)
		}
		return nil
	})
}
