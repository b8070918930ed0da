// Package memstore is an in-memory dirorm.Searcher, used for tests and for
// serving fixtures without a database file.
package memstore

import (
	"context"
	"sync"

	"github.com/tinywasm/dirorm"
)

// Store keeps records in insertion order.
type Store struct {
	mu      sync.RWMutex
	records []*dirorm.Record
}

var _ dirorm.Searcher = (*Store)(nil)

// New creates a Store holding copies of records.
func New(records ...*dirorm.Record) *Store {
	s := &Store{}
	s.Add(records...)
	return s
}

// Add appends copies of records.
func (s *Store) Add(records ...*dirorm.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.records = append(s.records, r.Clone())
	}
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Search returns clones of the matching records, so later Adds never change
// a result set that has already been handed out.
func (s *Store) Search(ctx context.Context, req dirorm.SearchRequest) (dirorm.ResultSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := dirorm.Records{}
	for _, r := range s.records {
		if matches(r, req) {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

func matches(r *dirorm.Record, req dirorm.SearchRequest) bool {
	if !dirorm.InScope(r.DN, req.Base, req.Scope) {
		return false
	}
	if req.ObjectClass != "" && !r.HasValue("objectClass", req.ObjectClass) {
		return false
	}
	for _, c := range req.Conditions {
		if !r.HasValue(c.Attr(), c.Value()) {
			return false
		}
	}
	return true
}
