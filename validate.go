package dirorm

import "fmt"

func validate(req SearchRequest) error {
	if req.ObjectClass == "" {
		return ErrEmptyObjectClass
	}
	if req.Base == "" {
		return ErrNoBaseDN
	}

	switch req.Scope {
	case ScopeBase, ScopeOneLevel, ScopeSubtree:
	default:
		return fmt.Errorf("%w: unknown search scope %d", ErrValidation, int(req.Scope))
	}

	for i, c := range req.Conditions {
		if c.Attr() == "" {
			return fmt.Errorf("%w: condition %d has no attribute", ErrValidation, i)
		}
	}
	return nil
}
