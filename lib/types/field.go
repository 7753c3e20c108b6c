package types

import (
	"fmt"

	"github.com/samber/mo"

	"github.com/shenodaguirguis/iceberg/lib/value"
)

// NestedField is one named member of a struct type. The id is permanent:
// once assigned in a schema it is never reused or renumbered, which is what
// lets files written under older schema versions stay readable.
type NestedField struct {
	ID       int32
	Name     string
	Type     Type
	Required bool
	Default  mo.Option[value.Value]
	Doc      string
}

func Required(id int32, name string, t Type) NestedField {
	return NestedField{ID: id, Name: name, Type: t, Required: true}
}

func Optional(id int32, name string, t Type) NestedField {
	return NestedField{ID: id, Name: name, Type: t, Required: false}
}

// WithDefault returns a copy carrying the given default literal. The value
// must already conform to the field's type; use LiteralFor to coerce first.
func (f NestedField) WithDefault(v value.Value) NestedField {
	f.Default = mo.Some(v)
	return f
}

func (f NestedField) WithDoc(doc string) NestedField {
	f.Doc = doc
	return f
}

func (f NestedField) String() string {
	req := "optional"
	if f.Required {
		req = "required"
	}
	return fmt.Sprintf("%d: %s: %s %s", f.ID, f.Name, req, f.Type)
}

// Equals compares id, name, type, required flag and default. Doc strings are
// carried by codecs but do not affect equality of meaning.
func (f NestedField) Equals(other NestedField) bool {
	if f.ID != other.ID || f.Name != other.Name || f.Required != other.Required {
		return false
	}
	if !Equal(f.Type, other.Type) {
		return false
	}
	fd, fok := f.Default.Get()
	od, ook := other.Default.Get()
	if fok != ook {
		return false
	}
	return !fok || fd.Equal(od)
}
