package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tinywasm/dirorm"
)

// Store is a SQLite backed directory.
type Store struct {
	db      *sql.DB
	planner Planner
	log     *slog.Logger
}

var _ dirorm.Searcher = (*Store)(nil)

// Search runs req and materializes the matching entries.
func (s *Store) Search(ctx context.Context, req dirorm.SearchRequest) (dirorm.ResultSet, error) {
	plan, err := s.planner.Plan(req)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, plan.Query, plan.Args...)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", req.Base, err)
	}
	defer rows.Close()

	out := dirorm.Records{}
	var cur *dirorm.Record
	var curID int64 = -1
	for rows.Next() {
		var (
			id          int64
			dn          string
			name, value sql.NullString
		)
		if err := rows.Scan(&id, &dn, &name, &value); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if id != curID {
			cur = dirorm.NewRecord(dn)
			curID = id
			out = append(out, cur)
		}
		if name.Valid {
			cur.Add(name.String, value.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search %s: %w", req.Base, err)
	}

	s.log.DebugContext(ctx, "search",
		"base", req.Base,
		"scope", req.Scope.String(),
		"class", req.ObjectClass,
		"conditions", len(req.Conditions),
		"entries", len(out))
	return out, nil
}

// Add inserts records in a single transaction. A DN that already exists
// aborts the whole batch.
func (s *Store) Add(ctx context.Context, records ...*dirorm.Record) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, rec := range records {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO entries (dn, parent) VALUES (?, ?)`,
			rec.DN, dirorm.ParentDN(rec.DN))
		if err != nil {
			return fmt.Errorf("add %s: %w", rec.DN, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("add %s: %w", rec.DN, err)
		}
		for _, name := range rec.Names() {
			for pos, v := range rec.GetAll(name) {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO attributes (entry_id, name, pos, value) VALUES (?, ?, ?, ?)`,
					id, name, pos, v); err != nil {
					return fmt.Errorf("add %s attribute %s: %w", rec.DN, name, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.log.DebugContext(ctx, "added entries", "count", len(records))
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
