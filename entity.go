package dirorm

// Entity is the capability a domain type needs to be built from one raw
// record. FromRecord must depend only on its arguments; db is passed through
// untouched from whoever created the QueryResult.
type Entity[T any] interface {
	TypeName() string
	FromRecord(db *DB, rec *Record) (T, error)
}

// Model is an Entity that can also be searched for by object class.
type Model[T any] interface {
	Entity[T]
	ObjectClass() string
}

// Descriptor is the stock Model implementation. Generated code declares one
// per struct, e.g.
//
//	var GroupEntity = dirorm.Descriptor[*Group]{Name: "Group", Class: "group", Decode: ...}
type Descriptor[T any] struct {
	Name   string
	Class  string
	Decode func(db *DB, rec *Record) (T, error)
}

func (d Descriptor[T]) TypeName() string    { return d.Name }
func (d Descriptor[T]) ObjectClass() string { return d.Class }

func (d Descriptor[T]) FromRecord(db *DB, rec *Record) (T, error) {
	return d.Decode(db, rec)
}
