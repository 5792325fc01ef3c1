// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// CreateSchema creates the kv table. Safe to call multiple times - uses
// IF NOT EXISTS. The same DDL works for both sqlite and postgres.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
-- One durable record per list, keyed by a namespaced string.
-- expires_at is a unix timestamp; expired rows read as absent and are
-- reaped lazily.
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    expires_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_kv_expires_at ON kv(expires_at);
`

// SQLKV implements KV on a database/sql handle. It works unchanged
// against sqlite (modernc.org/sqlite) and postgres (lib/pq); both
// accept $N placeholders and the upsert form below.
type SQLKV struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLKV(db *sql.DB) *SQLKV {
	return &SQLKV{db: db, now: time.Now}
}

func (s *SQLKV) Get(key string) ([]byte, bool, error) {
	var value string
	var expiresAt int64
	err := s.db.QueryRow(`
		SELECT value, expires_at FROM kv WHERE key = $1
	`, key).Scan(&value, &expiresAt)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kv get: %w", err)
	}

	if expiresAt <= s.now().Unix() {
		// Expired rows are absent; reap opportunistically
		if _, err := s.db.Exec(`DELETE FROM kv WHERE key = $1 AND expires_at <= $2`, key, s.now().Unix()); err != nil {
			slog.Warn("failed to reap expired key", "key", key, "error", err)
		}
		return nil, false, nil
	}

	return []byte(value), true, nil
}

func (s *SQLKV) Put(key string, value []byte, ttl time.Duration) error {
	expiresAt := s.now().Add(ttl).Unix()
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = $2, expires_at = $3
	`, key, string(value), expiresAt)
	if err != nil {
		return fmt.Errorf("kv put: %w", err)
	}
	return nil
}

func (s *SQLKV) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("kv delete: %w", err)
	}
	return nil
}

// ReapExpired deletes every expired row and returns the count. Intended
// for an occasional maintenance sweep; correctness never depends on it.
func (s *SQLKV) ReapExpired() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM kv WHERE expires_at <= $1`, s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("kv reap: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return n, nil
}
