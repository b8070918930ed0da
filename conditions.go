package dirorm

// Eq creates a condition matching entries whose attribute holds value.
// Values are compared case-insensitively.
func Eq(attr string, value string) Condition {
	return Condition{
		attr:  attr,
		value: value,
	}
}
