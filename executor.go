package dirorm

import "context"

// Searcher represents the directory connection abstraction.
// Implementations return a snapshot: the ResultSet must not change after
// Search returns.
type Searcher interface {
	Search(ctx context.Context, req SearchRequest) (ResultSet, error)
	Close() error
}
