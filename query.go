package dirorm

// Scope limits which entries below the base DN a search may return.
type Scope int

const (
	ScopeBase     Scope = iota // the base entry only
	ScopeOneLevel              // direct children of the base
	ScopeSubtree               // the base and everything below it
)

func (s Scope) String() string {
	switch s {
	case ScopeBase:
		return "base"
	case ScopeOneLevel:
		return "one"
	case ScopeSubtree:
		return "sub"
	default:
		return "unknown"
	}
}

// Condition is an attribute equality test.
// It is a sealed value type constructed via Eq().
type Condition struct {
	attr  string
	value string
}

func (c Condition) Attr() string  { return c.attr }
func (c Condition) Value() string { return c.value }

// SearchRequest is what a Searcher receives.
// Searchers read these fields to build native queries.
type SearchRequest struct {
	Base        string
	Scope       Scope
	ObjectClass string
	Conditions  []Condition
}
