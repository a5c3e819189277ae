package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver

	"github.com/openpore/channelmap/internal/targets"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS target_cache (
	key     TEXT PRIMARY KEY,
	payload BLOB NOT NULL
);`

// SQLite is a TargetCache persisted to a sqlite database, so parsed
// target maps survive process restarts.
type SQLite struct {
	db *sqlx.DB
}

// NewSQLite opens (creating if needed) the cache database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite cache %s: %w", path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create target_cache table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (c *SQLite) Get(ctx context.Context, key string) (targets.Map, bool, error) {
	var payload []byte
	err := c.db.GetContext(ctx, &payload, `SELECT payload FROM target_cache WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}

	var m targets.Map
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return m, true, nil
}

func (c *SQLite) Put(ctx context.Context, key string, m targets.Map) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO target_cache (key, payload) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`, key, payload)
	if err != nil {
		return fmt.Errorf("cache put %s: %w", key, err)
	}
	return nil
}

func (c *SQLite) Close() error { return c.db.Close() }
