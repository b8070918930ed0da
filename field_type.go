package dirorm

// FieldType represents the abstract syntax of a model attribute.
type FieldType int

const (
	TypeText FieldType = iota
	TypeInt64
	TypeBool
	TypeDN // Text holding a distinguished name.
)

func (t FieldType) String() string {
	switch t {
	case TypeInt64:
		return "int64"
	case TypeBool:
		return "bool"
	case TypeDN:
		return "dn"
	default:
		return "text"
	}
}

// Field describes a single attribute in a model's schema.
type Field struct {
	Name     string // Go field name
	Attr     string // directory attribute name
	Type     FieldType
	Many     bool // multi-valued
	ReadOnly bool // maintained by the directory, never written back
}
