package dirorm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Record is one raw directory entry as returned by a search: a DN and its
// attribute values. Attribute names are case-insensitive.
type Record struct {
	DN    string
	Attrs map[string][]string
}

// NewRecord creates an empty record for dn.
func NewRecord(dn string) *Record {
	return &Record{DN: dn, Attrs: make(map[string][]string)}
}

// Set replaces all values of attr.
func (r *Record) Set(attr string, values ...string) *Record {
	if r.Attrs == nil {
		r.Attrs = make(map[string][]string)
	}
	r.Attrs[strings.ToLower(attr)] = append([]string(nil), values...)
	return r
}

// Add appends values to attr.
func (r *Record) Add(attr string, values ...string) *Record {
	if r.Attrs == nil {
		r.Attrs = make(map[string][]string)
	}
	key := strings.ToLower(attr)
	r.Attrs[key] = append(r.Attrs[key], values...)
	return r
}

// Get returns the first value of attr, or "" when it is absent.
func (r *Record) Get(attr string) string {
	vals := r.Attrs[strings.ToLower(attr)]
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// GetAll returns every value of attr.
func (r *Record) GetAll(attr string) []string {
	return r.Attrs[strings.ToLower(attr)]
}

// Has reports whether attr carries at least one value.
func (r *Record) Has(attr string) bool {
	return len(r.Attrs[strings.ToLower(attr)]) > 0
}

// HasValue reports whether attr holds value, compared case-insensitively.
func (r *Record) HasValue(attr, value string) bool {
	for _, v := range r.Attrs[strings.ToLower(attr)] {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}

// Names returns the attribute names in sorted order.
func (r *Record) Names() []string {
	names := make([]string, 0, len(r.Attrs))
	for name := range r.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	c := &Record{DN: r.DN, Attrs: make(map[string][]string, len(r.Attrs))}
	for k, v := range r.Attrs {
		c.Attrs[k] = append([]string(nil), v...)
	}
	return c
}

// Decode stores the value(s) of attr into dest. Supported destinations are
// *string, *[]string, *int64, *int, *int32, *uint32 and *bool. A missing
// attribute leaves dest untouched.
func (r *Record) Decode(attr string, dest any) error {
	vals := r.GetAll(attr)
	if len(vals) == 0 {
		return nil
	}
	v := vals[0]

	switch d := dest.(type) {
	case *string:
		*d = v
	case *[]string:
		*d = append([]string(nil), vals...)
	case *int64:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return r.decodeErr(attr, v)
		}
		*d = n
	case *int:
		n, err := strconv.ParseInt(v, 10, 0)
		if err != nil {
			return r.decodeErr(attr, v)
		}
		*d = int(n)
	case *int32:
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return r.decodeErr(attr, v)
		}
		*d = int32(n)
	case *uint32:
		// Directory flags are often stored as signed 32-bit values.
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < -1<<31 || n > 1<<32-1 {
			return r.decodeErr(attr, v)
		}
		*d = uint32(n)
	case *bool:
		switch strings.ToUpper(v) {
		case "TRUE":
			*d = true
		case "FALSE":
			*d = false
		default:
			return r.decodeErr(attr, v)
		}
	default:
		return fmt.Errorf("%w: unsupported destination %T for attribute %s", ErrValidation, dest, attr)
	}
	return nil
}

func (r *Record) decodeErr(attr, value string) error {
	return &DecodeError{DN: r.DN, Attr: attr, Value: value}
}

// DecodeError reports an attribute value that could not be converted.
type DecodeError struct {
	DN    string
	Attr  string
	Value string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: invalid value %q for attribute %s", e.DN, e.Value, e.Attr)
}

func (e *DecodeError) Unwrap() error { return ErrValidation }

// ResultSet is the raw outcome of a search: a counted, 0-indexed, stably
// ordered collection of records.
type ResultSet interface {
	Count() int
	At(i int) *Record
}

// Records is the slice-backed ResultSet returned by the stock searchers.
type Records []*Record

func (rs Records) Count() int        { return len(rs) }
func (rs Records) At(i int) *Record { return rs[i] }
