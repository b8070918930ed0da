package dirorm

import "iter"

// QueryResult wraps the raw records of one search and turns them into typed
// values on demand. The count is captured at construction; the underlying
// ResultSet must not change while the QueryResult is in use.
type QueryResult[T any] struct {
	entity Entity[T]
	db     *DB
	result ResultSet
	count  int
	name   string
}

// NewQueryResult wraps rs. It performs no I/O.
func NewQueryResult[T any](entity Entity[T], db *DB, rs ResultSet) *QueryResult[T] {
	return &QueryResult[T]{
		entity: entity,
		db:     db,
		result: rs,
		count:  rs.Count(),
		name:   HumanName(entity.TypeName()),
	}
}

// Count returns the number of matching records.
func (q *QueryResult[T]) Count() int { return q.count }

// Name returns the human readable entity name used in error messages.
func (q *QueryResult[T]) Name() string { return q.name }

// All yields one value per record in result order. Each range over All
// decodes the records again.
func (q *QueryResult[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i := 0; i < q.count; i++ {
			if !yield(q.at(i)) {
				return
			}
		}
	}
}

// Collect decodes every record, stopping at the first error.
func (q *QueryResult[T]) Collect() ([]T, error) {
	out := make([]T, 0, q.count)
	for v, err := range q.All() {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// First returns the first record, or ok == false when there are none.
func (q *QueryResult[T]) First() (v T, ok bool, err error) {
	if q.count == 0 {
		return v, false, nil
	}
	v, err = q.at(0)
	return v, err == nil, err
}

// Last returns the last record, or ok == false when there are none.
func (q *QueryResult[T]) Last() (v T, ok bool, err error) {
	if q.count == 0 {
		return v, false, nil
	}
	v, err = q.at(q.count - 1)
	return v, err == nil, err
}

// Get returns the only record, or ok == false when there are none.
// More than one record is a *MultipleResultsError.
func (q *QueryResult[T]) Get() (v T, ok bool, err error) {
	switch {
	case q.count > 1:
		return v, false, q.multipleErr()
	case q.count == 0:
		return v, false, nil
	}
	v, err = q.at(0)
	return v, err == nil, err
}

// One returns exactly one record. None is a *NotFoundError, more than one is
// a *MultipleResultsError.
func (q *QueryResult[T]) One() (v T, err error) {
	switch {
	case q.count < 1:
		return v, &NotFoundError{Name: q.name}
	case q.count > 1:
		return v, q.multipleErr()
	}
	return q.at(0)
}

func (q *QueryResult[T]) at(i int) (T, error) {
	return q.entity.FromRecord(q.db, q.result.At(i))
}

func (q *QueryResult[T]) multipleErr() error {
	return &MultipleResultsError{Name: q.name, Count: q.count}
}
