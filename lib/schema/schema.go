package schema

import (
	"strings"

	"github.com/shenodaguirguis/iceberg/lib/types"
)

// Schema is a versioned snapshot of a table's column tree: a root struct
// type plus eager lookup indices over every field at any nesting depth.
// Schemas are immutable after New and safe to share across goroutines.
type Schema struct {
	root           *types.StructType
	byID           map[int32]types.NestedField
	idByLowerName  map[string]int32
	highestFieldID int32
}

// New builds a schema from top-level fields in a single recursive walk.
// Field ids must be unique across the whole tree, including list element and
// map key/value ids.
func New(fields ...types.NestedField) (*Schema, error) {
	root, err := types.StructTypeOf(fields...)
	if err != nil {
		return nil, err
	}
	return FromStruct(root)
}

// FromStruct builds a schema around an existing root struct type.
func FromStruct(root *types.StructType) (*Schema, error) {
	s := &Schema{
		root:          root,
		byID:          make(map[int32]types.NestedField),
		idByLowerName: make(map[string]int32),
	}
	for _, f := range root.Fields() {
		if err := s.index(f, true); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Schema) index(f types.NestedField, named bool) error {
	if prev, ok := s.byID[f.ID]; ok {
		return errDuplicateID(f.ID, prev.Name, f.Name)
	}
	s.byID[f.ID] = f
	if f.ID > s.highestFieldID {
		s.highestFieldID = f.ID
	}
	// list element and map key/value fields carry synthetic names and are
	// reachable by id only; on duplicate names the first field in traversal
	// order wins
	if named {
		lower := strings.ToLower(f.Name)
		if _, ok := s.idByLowerName[lower]; !ok {
			s.idByLowerName[lower] = f.ID
		}
	}
	switch t := f.Type.(type) {
	case *types.StructType:
		for _, child := range t.Fields() {
			if err := s.index(child, named); err != nil {
				return err
			}
		}
	case *types.ListType:
		return s.index(t.ElementField(), false)
	case *types.MapType:
		if err := s.index(t.KeyField(), false); err != nil {
			return err
		}
		return s.index(t.ValueField(), false)
	}
	return nil
}

// AsStruct exposes the root struct type; a schema's wire form is exactly this
// type's JSON object.
func (s *Schema) AsStruct() *types.StructType {
	return s.root
}

func (s *Schema) HighestFieldID() int32 {
	return s.highestFieldID
}

// FindFieldByID resolves a field at any nesting depth. Absence is not an
// error; the second return reports it.
func (s *Schema) FindFieldByID(id int32) (types.NestedField, bool) {
	f, ok := s.byID[id]
	return f, ok
}

// FindFieldByName resolves a field case-insensitively by name.
func (s *Schema) FindFieldByName(name string) (types.NestedField, bool) {
	id, ok := s.idByLowerName[strings.ToLower(name)]
	if !ok {
		return types.NestedField{}, false
	}
	return s.byID[id], true
}

// Same reports structural equality over (id, name, type, required, default),
// independent of field order at every struct level.
func Same(a, b *Schema) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return types.Equal(a.root, b.root)
}

func (s *Schema) String() string {
	return s.root.String()
}
