// Package fixture loads directory entries from YAML documents of the form
//
//	base_dn: DC=example,DC=com
//	entries:
//	  - dn: CN=Alice,CN=Users,DC=example,DC=com
//	    attributes:
//	      objectClass: [top, person, user]
//	      sAMAccountName: alice
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tinywasm/dirorm"
)

// ErrInvalid is wrapped by every validation failure in Load.
var ErrInvalid = errors.New("invalid fixture")

// Fixture is a parsed fixture document.
type Fixture struct {
	BaseDN  string  `yaml:"base_dn"`
	Entries []Entry `yaml:"entries"`
}

// Entry is one directory entry.
type Entry struct {
	DN         string            `yaml:"dn"`
	Attributes map[string]Values `yaml:"attributes"`

	line int
}

// Values accepts either a scalar or a sequence of scalars.
type Values []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = Values{node.Value}
		return nil
	case yaml.SequenceNode:
		out := make(Values, 0, len(node.Content))
		for _, n := range node.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: attribute values must be scalars", n.Line)
			}
			out = append(out, n.Value)
		}
		*v = out
		return nil
	default:
		return fmt.Errorf("line %d: attribute values must be a scalar or a list", node.Line)
	}
}

// UnmarshalYAML records the entry's line for error messages.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	type plain Entry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = Entry(p)
	e.line = node.Line
	return nil
}

// Load parses and validates a fixture document.
func Load(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("parse fixture: %w", err)
	}

	seen := make(map[string]int, len(f.Entries))
	for _, e := range f.Entries {
		if e.DN == "" {
			return nil, fmt.Errorf("%w: line %d: entry without dn", ErrInvalid, e.line)
		}
		if len(lookup(e.Attributes, "objectClass")) == 0 {
			return nil, fmt.Errorf("%w: line %d: %s has no objectClass", ErrInvalid, e.line, e.DN)
		}
		key := strings.ToLower(e.DN)
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: line %d: %s already defined on line %d", ErrInvalid, e.line, e.DN, prev)
		}
		seen[key] = e.line
	}
	return &f, nil
}

// LoadFile reads a fixture from path.
func LoadFile(path string) (*Fixture, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

// Records converts the entries to records. Entries without an objectGUID
// get a random one.
func (f *Fixture) Records() dirorm.Records {
	out := make(dirorm.Records, 0, len(f.Entries))
	for _, e := range f.Entries {
		rec := dirorm.NewRecord(e.DN)
		for name, vals := range e.Attributes {
			rec.Add(name, vals...)
		}
		if !rec.Has("objectGUID") {
			rec.Set("objectGUID", uuid.NewString())
		}
		out = append(out, rec)
	}
	return out
}

// Outside returns the DNs of entries that do not lie in the subtree of
// BaseDN. It is nil when BaseDN is empty.
func (f *Fixture) Outside() []string {
	if f.BaseDN == "" {
		return nil
	}
	var out []string
	for _, e := range f.Entries {
		if !dirorm.InScope(e.DN, f.BaseDN, dirorm.ScopeSubtree) {
			out = append(out, e.DN)
		}
	}
	return out
}

// lookup finds an attribute by case-insensitive name.
func lookup(attrs map[string]Values, name string) Values {
	for k, v := range attrs {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return nil
}
