package dirorm

import "strings"

// ParentDN returns dn without its first RDN, or "" for a single-RDN DN.
// Escaped commas ("\,") do not split.
func ParentDN(dn string) string {
	for i := 0; i < len(dn); i++ {
		switch dn[i] {
		case '\\':
			i++
		case ',':
			return strings.TrimSpace(dn[i+1:])
		}
	}
	return ""
}

// InScope reports whether dn falls within scope of base.
// Comparison is case-insensitive.
func InScope(dn, base string, scope Scope) bool {
	switch scope {
	case ScopeBase:
		return strings.EqualFold(dn, base)
	case ScopeOneLevel:
		return strings.EqualFold(ParentDN(dn), base)
	case ScopeSubtree:
		if strings.EqualFold(dn, base) {
			return true
		}
		for p := ParentDN(dn); p != ""; p = ParentDN(p) {
			if strings.EqualFold(p, base) {
				return true
			}
		}
	}
	return false
}
