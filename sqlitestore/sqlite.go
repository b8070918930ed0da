// Package sqlitestore is a dirorm.Searcher backed by a SQLite file.
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/tinywasm/dirorm"
)

// driverName is go-sqlite3 with the DN functions the planner relies on.
const driverName = "sqlite3_dirorm"

// subtreeFunc reports whether a DN lies in the subtree of a base DN.
const subtreeFunc = "in_subtree"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(subtreeFunc, inSubtree, true)
		},
	})
}

func inSubtree(dn, base string) int64 {
	if dirorm.InScope(dn, base, dirorm.ScopeSubtree) {
		return 1
	}
	return 0
}

// SQLite DSN parameters.
const (
	defaultBusyTimeout = "5000" // 5 seconds
	defaultSynchronous = "NORMAL"
	defaultJournalMode = "WAL"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	dn     TEXT NOT NULL UNIQUE COLLATE NOCASE,
	parent TEXT NOT NULL COLLATE NOCASE
);
CREATE INDEX IF NOT EXISTS entries_parent ON entries (parent);
CREATE TABLE IF NOT EXISTS attributes (
	entry_id INTEGER NOT NULL REFERENCES entries (id) ON DELETE CASCADE,
	name     TEXT NOT NULL COLLATE NOCASE,
	pos      INTEGER NOT NULL,
	value    TEXT NOT NULL COLLATE NOCASE,
	PRIMARY KEY (entry_id, name, pos)
);
CREATE INDEX IF NOT EXISTS attributes_name_value ON attributes (name, value);
`

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for query tracing. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// Open opens (creating if needed) the SQLite file at path and migrates it.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open(driverName, buildDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite allows a single writer; one connection also keeps the
	// snapshot semantics simple.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	s := &Store{
		db:      db,
		planner: planner{},
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// buildDSN constructs a SQLite DSN with hardened parameters.
func buildDSN(path string) string {
	params := url.Values{}
	params.Set("_journal_mode", defaultJournalMode)
	params.Set("_busy_timeout", defaultBusyTimeout)
	params.Set("_synchronous", defaultSynchronous)
	params.Set("_foreign_keys", "on")
	params.Set("_txlock", "immediate")
	return path + "?" + params.Encode()
}
