package sqlitestore

import (
	"fmt"
	"strings"

	"github.com/tinywasm/dirorm"
)

// Plan is the SQL statement a search request compiles to.
type Plan struct {
	Query string
	Args  []any
}

// Planner converts search requests into SQL.
type Planner interface {
	Plan(req dirorm.SearchRequest) (Plan, error)
}

type planner struct{}

var _ Planner = planner{}

// Plan builds one query returning (id, dn, name, value) rows for every
// matching entry, ordered by insertion.
func (planner) Plan(req dirorm.SearchRequest) (Plan, error) {
	var where []string
	var args []any

	switch req.Scope {
	case dirorm.ScopeBase:
		where = append(where, "m.dn = ?")
		args = append(args, req.Base)
	case dirorm.ScopeOneLevel:
		where = append(where, "m.parent = ?")
		args = append(args, req.Base)
	case dirorm.ScopeSubtree:
		// LIKE narrows the candidates; in_subtree applies the DN rules
		// (escaped commas, spaces after separators).
		where = append(where, `m.dn LIKE ? ESCAPE '\' AND `+subtreeFunc+`(m.dn, ?)`)
		args = append(args, "%"+escapeLike(req.Base), req.Base)
	default:
		return Plan{}, fmt.Errorf("%w: unknown search scope %d", dirorm.ErrValidation, int(req.Scope))
	}

	if req.ObjectClass != "" {
		where = append(where, attrMatch)
		args = append(args, "objectClass", req.ObjectClass)
	}
	for _, c := range req.Conditions {
		where = append(where, attrMatch)
		args = append(args, c.Attr(), c.Value())
	}

	q := "SELECT e.id, e.dn, a.name, a.value\n" +
		"FROM entries e\n" +
		"LEFT JOIN attributes a ON a.entry_id = e.id\n" +
		"WHERE e.id IN (SELECT m.id FROM entries m WHERE " + strings.Join(where, " AND ") + ")\n" +
		"ORDER BY e.id, a.name, a.pos"

	return Plan{Query: q, Args: args}, nil
}

const attrMatch = "EXISTS (SELECT 1 FROM attributes x WHERE x.entry_id = m.id AND x.name = ? AND x.value = ?)"

// escapeLike escapes LIKE wildcards using '\' as the escape character.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
