package dirorm

import "context"

// DB represents a directory connection.
// Consumers instantiate it via New().
type DB struct {
	exec   Searcher
	baseDN string
}

// New creates a new DB instance searching below baseDN by default.
func New(exec Searcher, baseDN string) *DB {
	return &DB{
		exec:   exec,
		baseDN: baseDN,
	}
}

// BaseDN returns the default search base.
func (db *DB) BaseDN() string {
	return db.baseDN
}

// Close closes the underlying searcher.
func (db *DB) Close() error {
	return db.exec.Close()
}

// RawSearcher returns the underlying searcher instance.
func (db *DB) RawSearcher() Searcher {
	return db.exec
}

// Search runs req for entries of m's object class and wraps the result.
// req.ObjectClass is always taken from m.
func Search[T any](ctx context.Context, db *DB, m Model[T], req SearchRequest) (*QueryResult[T], error) {
	req.ObjectClass = m.ObjectClass()
	if err := validate(req); err != nil {
		return nil, err
	}
	rs, err := db.exec.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	return NewQueryResult(m, db, rs), nil
}

// Query searches the whole subtree below the DB's base DN.
func Query[T any](ctx context.Context, db *DB, m Model[T], conds ...Condition) (*QueryResult[T], error) {
	return Search(ctx, db, m, SearchRequest{
		Base:       db.baseDN,
		Scope:      ScopeSubtree,
		Conditions: conds,
	})
}

// Lookup returns the entry at dn, which must be of m's object class.
func Lookup[T any](ctx context.Context, db *DB, m Model[T], dn string) (T, error) {
	res, err := Search(ctx, db, m, SearchRequest{Base: dn, Scope: ScopeBase})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.One()
}
