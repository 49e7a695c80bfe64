// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// LocalStore is the ordered key-value persistence a session holds between
// Unlocked and Locked: a data tree of encrypted vaults/records and an
// outbox tree of pending mutations. Every mutating method that touches both
// trees commits a single transaction.
type LocalStore interface {
	// Get returns the value stored at key in tree, or ErrNotFoundLocal.
	Get(ctx context.Context, tree, key string) ([]byte, error)

	// ScanPrefix returns every value in tree whose key has the given
	// prefix, ordered by insertion (ascending seq).
	ScanPrefix(ctx context.Context, tree, prefix string) ([][]byte, error)

	// Put inserts or replaces the value at key in tree.
	Put(ctx context.Context, tree, key string, value []byte) error

	// Delete removes key from tree. Deleting an absent key is not an error.
	Delete(ctx context.Context, tree, key string) error

	// PutWithOutbox atomically writes dataKey/dataValue into the "data"
	// tree and outboxKey/outboxValue into the "outbox" tree — the
	// transactional primitive spec §4.4 requires for every façade mutation.
	PutWithOutbox(ctx context.Context, dataKey string, dataValue []byte, outboxKey string, outboxValue []byte) error

	// DeleteWithOutbox atomically deletes dataKey from the "data" tree and
	// writes outboxKey/outboxValue into the "outbox" tree.
	DeleteWithOutbox(ctx context.Context, dataKey string, outboxKey string, outboxValue []byte) error

	// Flush is a no-op on the current backend (every write already commits
	// a durable transaction); kept to satisfy spec §4.4's "explicit flush,
	// or equivalent" requirement for callers that expect one.
	Flush(ctx context.Context) error

	// Close releases the underlying database handle.
	Close() error
}

// TreeData and TreeOutbox name the two logical trees spec §4.4 describes.
// Callers outside this package (the sync engine, the façade) pass these to
// LocalStore's Get/Put/Delete/ScanPrefix.
const (
	TreeData   = "data"
	TreeOutbox = "outbox"
)

const (
	treeData   = TreeData
	treeOutbox = TreeOutbox
)

const localSchema = `
CREATE TABLE IF NOT EXISTS kv_data (
	seq   INTEGER PRIMARY KEY AUTOINCREMENT,
	tree  TEXT NOT NULL,
	key   TEXT NOT NULL,
	value BLOB NOT NULL,
	UNIQUE(tree, key)
);
CREATE INDEX IF NOT EXISTS idx_kv_data_tree_key ON kv_data(tree, key);
`

// sqliteStore implements LocalStore on a single modernc.org/sqlite file.
// Both logical trees share one physical table distinguished by the tree
// column, which keeps the one-transaction-per-mutation requirement trivial:
// both writes are just two statements in the same *sql.Tx.
type sqliteStore struct {
	db *sql.DB
}

// OpenLocalStore opens (creating if absent) the SQLite file at path and
// ensures its schema exists. path may be ":memory:" for tests.
func OpenLocalStore(path string) (LocalStore, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("store: create local store dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open local store: %w", err)
	}
	db.SetMaxOpenConns(1) // modernc.org/sqlite: one writer at a time

	if _, err := db.Exec(localSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate local store: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(ctx context.Context, tree, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_data WHERE tree = ? AND key = ?`, tree, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFoundLocal
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return value, nil
}

func (s *sqliteStore) ScanPrefix(ctx context.Context, tree, prefix string) ([][]byte, error) {
	likePattern := escapeLike(prefix) + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT value FROM kv_data WHERE tree = ? AND key LIKE ? ESCAPE '\' ORDER BY seq ASC`,
		tree, likePattern,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out [][]byte
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out = append(out, value)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Put(ctx context.Context, tree, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, upsertSQL, tree, key, value)
	if err != nil {
		return fmt.Errorf("store: put %s/%s: %w", tree, key, err)
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, tree, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_data WHERE tree = ? AND key = ?`, tree, key)
	if err != nil {
		return fmt.Errorf("store: delete %s/%s: %w", tree, key, err)
	}
	return nil
}

const upsertSQL = `
INSERT INTO kv_data (tree, key, value) VALUES (?, ?, ?)
ON CONFLICT(tree, key) DO UPDATE SET value = excluded.value
`

func (s *sqliteStore) PutWithOutbox(ctx context.Context, dataKey string, dataValue []byte, outboxKey string, outboxValue []byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, upsertSQL, treeData, dataKey, dataValue); err != nil {
		return fmt.Errorf("store: put data %s: %w", dataKey, err)
	}
	if _, err := tx.ExecContext(ctx, upsertSQL, treeOutbox, outboxKey, outboxValue); err != nil {
		return fmt.Errorf("store: put outbox %s: %w", outboxKey, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}
	return nil
}

func (s *sqliteStore) DeleteWithOutbox(ctx context.Context, dataKey string, outboxKey string, outboxValue []byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM kv_data WHERE tree = ? AND key = ?`, treeData, dataKey); err != nil {
		return fmt.Errorf("store: delete data %s: %w", dataKey, err)
	}
	if _, err := tx.ExecContext(ctx, upsertSQL, treeOutbox, outboxKey, outboxValue); err != nil {
		return fmt.Errorf("store: put outbox %s: %w", outboxKey, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}
	return nil
}

func (s *sqliteStore) Flush(ctx context.Context) error {
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// escapeLike escapes the LIKE metacharacters % _ and \ in s so that
// ScanPrefix treats prefix literally.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '%', '_':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
