package dirorm_test

import (
	"context"
	"errors"

	"github.com/tinywasm/dirorm"
)

// MockSearcher captures search calls and returns a predefined result.
type MockSearcher struct {
	Requests     []dirorm.SearchRequest
	ReturnResult dirorm.ResultSet
	ReturnErr    error
	CloseErr     error
	Closed       bool
}

func (m *MockSearcher) Search(_ context.Context, req dirorm.SearchRequest) (dirorm.ResultSet, error) {
	m.Requests = append(m.Requests, req)
	if m.ReturnErr != nil {
		return nil, m.ReturnErr
	}
	if m.ReturnResult == nil {
		return dirorm.Records{}, nil
	}
	return m.ReturnResult, nil
}

func (m *MockSearcher) Close() error {
	m.Closed = true
	return m.CloseErr
}

// Thing is a minimal typed entity.
type Thing struct {
	DN   string
	Name string
}

// CountingEntity decodes Things and counts factory calls.
type CountingEntity struct {
	Name     string
	Class    string
	Calls    int
	FailOnDN string
	SeenDB   *dirorm.DB
}

var errBadRecord = errors.New("bad record")

func (e *CountingEntity) TypeName() string    { return e.Name }
func (e *CountingEntity) ObjectClass() string { return e.Class }

func (e *CountingEntity) FromRecord(db *dirorm.DB, rec *dirorm.Record) (*Thing, error) {
	e.Calls++
	e.SeenDB = db
	if e.FailOnDN != "" && rec.DN == e.FailOnDN {
		return nil, errBadRecord
	}
	return &Thing{DN: rec.DN, Name: rec.Get("name")}, nil
}

func records(dns ...string) dirorm.Records {
	out := make(dirorm.Records, 0, len(dns))
	for _, dn := range dns {
		out = append(out, dirorm.NewRecord(dn).Set("name", dn).Set("objectClass", "thing"))
	}
	return out
}
