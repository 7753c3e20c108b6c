package types

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// StructType is an ordered sequence of fields. Order matters to codecs but
// not to equality of meaning; see Equal.
type StructType struct {
	fields []NestedField
}

// StructTypeOf validates that the direct field ids are pairwise distinct and
// returns the struct type. Ids deeper in the tree are validated when a Schema
// is assembled.
func StructTypeOf(fields ...NestedField) (*StructType, error) {
	seen := make(map[int32]string, len(fields))
	for _, f := range fields {
		if prev, ok := seen[f.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate field id %d used by '%s' and '%s'", ErrInvalidSchema, f.ID, prev, f.Name)
		}
		seen[f.ID] = f.Name
	}
	copied := make([]NestedField, len(fields))
	copy(copied, fields)
	return &StructType{fields: copied}, nil
}

func (s *StructType) isType()        {}
func (s *StructType) TypeID() TypeID { return STRUCT }
func (s *StructType) String() string {
	rendered := lo.Map(s.fields, func(f NestedField, _ int) string { return f.String() })
	return fmt.Sprintf("struct<%s>", strings.Join(rendered, ", "))
}

// Fields returns the fields in declaration order. The returned slice is a
// copy; the struct stays immutable.
func (s *StructType) Fields() []NestedField {
	copied := make([]NestedField, len(s.fields))
	copy(copied, s.fields)
	return copied
}

func (s *StructType) Len() int {
	return len(s.fields)
}

// Field looks up a direct child by exact name.
func (s *StructType) Field(name string) (NestedField, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return NestedField{}, false
}

// ListType holds one element field. The element id is a real field id and is
// permanent like any other.
type ListType struct {
	ElementID       int32
	Element         Type
	ElementRequired bool
}

func ListTypeOf(elementID int32, element Type, elementRequired bool) *ListType {
	return &ListType{ElementID: elementID, Element: element, ElementRequired: elementRequired}
}

func (l *ListType) isType()        {}
func (l *ListType) TypeID() TypeID { return LIST }
func (l *ListType) String() string {
	return fmt.Sprintf("list<%s>", l.Element)
}

// ElementField exposes the element as a synthetic field for index walks.
func (l *ListType) ElementField() NestedField {
	return NestedField{ID: l.ElementID, Name: "element", Type: l.Element, Required: l.ElementRequired}
}

// MapType holds a key field and a value field. Keys are always required.
type MapType struct {
	KeyID         int32
	Key           Type
	ValueID       int32
	Value         Type
	ValueRequired bool
}

func MapTypeOf(keyID int32, key Type, valueID int32, val Type, valueRequired bool) *MapType {
	return &MapType{KeyID: keyID, Key: key, ValueID: valueID, Value: val, ValueRequired: valueRequired}
}

func (m *MapType) isType()        {}
func (m *MapType) TypeID() TypeID { return MAP }
func (m *MapType) String() string {
	return fmt.Sprintf("map<%s, %s>", m.Key, m.Value)
}

func (m *MapType) KeyField() NestedField {
	return NestedField{ID: m.KeyID, Name: "key", Type: m.Key, Required: true}
}

func (m *MapType) ValueField() NestedField {
	return NestedField{ID: m.ValueID, Name: "value", Type: m.Value, Required: m.ValueRequired}
}

// Equal is structural equality of meaning. Struct fields compare as sets
// keyed by id, so reordering columns does not change a type's identity.
func Equal(a, b Type) bool {
	if a.TypeID() != b.TypeID() {
		return false
	}
	switch at := a.(type) {
	case DecimalType:
		bt := b.(DecimalType)
		return at.Precision == bt.Precision && at.Scale == bt.Scale
	case FixedType:
		return at.Length == b.(FixedType).Length
	case TimestampType:
		return at.WithZone == b.(TimestampType).WithZone
	case *StructType:
		bt := b.(*StructType)
		if len(at.fields) != len(bt.fields) {
			return false
		}
		byID := make(map[int32]NestedField, len(bt.fields))
		for _, f := range bt.fields {
			byID[f.ID] = f
		}
		for _, f := range at.fields {
			other, ok := byID[f.ID]
			if !ok || !f.Equals(other) {
				return false
			}
		}
		return true
	case *ListType:
		bt := b.(*ListType)
		return at.ElementID == bt.ElementID &&
			at.ElementRequired == bt.ElementRequired &&
			Equal(at.Element, bt.Element)
	case *MapType:
		bt := b.(*MapType)
		return at.KeyID == bt.KeyID && at.ValueID == bt.ValueID &&
			at.ValueRequired == bt.ValueRequired &&
			Equal(at.Key, bt.Key) && Equal(at.Value, bt.Value)
	default:
		// parameterless primitives are equal by TypeID alone
		return true
	}
}
