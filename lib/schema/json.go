package schema

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"

	"github.com/shenodaguirguis/iceberg/lib/types"
)

// Wire format: a schema serializes as its root struct's type object.
//
//	Type  := primitive-string
//	       | {"type":"struct","fields":[Field,...]}
//	       | {"type":"list","element-id":int,"element":Type,"element-required":bool}
//	       | {"type":"map","key-id":int,"key":Type,"value-id":int,"value":Type,"value-required":bool}
//	Field := {"id":int,"name":string,"required":bool,"type":Type,"default"?:string,"doc"?:string}
//
// Parsing is strict: unknown discriminators and missing keys fail, nothing is
// silently skipped or defaulted.

const (
	keyType            = "type"
	typeStruct         = "struct"
	typeList           = "list"
	typeMap            = "map"
	keyFields          = "fields"
	keyID              = "id"
	keyName            = "name"
	keyRequired        = "required"
	keyDefault         = "default"
	keyDoc             = "doc"
	keyElementID       = "element-id"
	keyElement         = "element"
	keyElementRequired = "element-required"
	keyKeyID           = "key-id"
	keyKey             = "key"
	keyValueID         = "value-id"
	keyValue           = "value"
	keyValueRequired   = "value-required"
)

// ToJSON renders the schema's canonical wire form.
func ToJSON(s *Schema) (string, error) {
	var buf bytes.Buffer
	if err := writeType(&buf, s.AsStruct()); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeType(buf *bytes.Buffer, t types.Type) error {
	switch nt := t.(type) {
	case *types.StructType:
		return writeStruct(buf, nt)
	case *types.ListType:
		buf.WriteString(`{"type":"list","element-id":`)
		buf.WriteString(strconv.FormatInt(int64(nt.ElementID), 10))
		buf.WriteString(`,"element":`)
		if err := writeType(buf, nt.Element); err != nil {
			return err
		}
		buf.WriteString(`,"element-required":`)
		buf.WriteString(strconv.FormatBool(nt.ElementRequired))
		buf.WriteByte('}')
		return nil
	case *types.MapType:
		buf.WriteString(`{"type":"map","key-id":`)
		buf.WriteString(strconv.FormatInt(int64(nt.KeyID), 10))
		buf.WriteString(`,"key":`)
		if err := writeType(buf, nt.Key); err != nil {
			return err
		}
		buf.WriteString(`,"value-id":`)
		buf.WriteString(strconv.FormatInt(int64(nt.ValueID), 10))
		buf.WriteString(`,"value":`)
		if err := writeType(buf, nt.Value); err != nil {
			return err
		}
		buf.WriteString(`,"value-required":`)
		buf.WriteString(strconv.FormatBool(nt.ValueRequired))
		buf.WriteByte('}')
		return nil
	default:
		writeJSONString(buf, t.String())
		return nil
	}
}

func writeStruct(buf *bytes.Buffer, st *types.StructType) error {
	buf.WriteString(`{"type":"struct","fields":[`)
	for i, f := range st.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"id":`)
		buf.WriteString(strconv.FormatInt(int64(f.ID), 10))
		buf.WriteString(`,"name":`)
		writeJSONString(buf, f.Name)
		buf.WriteString(`,"required":`)
		buf.WriteString(strconv.FormatBool(f.Required))
		buf.WriteString(`,"type":`)
		if err := writeType(buf, f.Type); err != nil {
			return err
		}
		if def, ok := f.Default.Get(); ok {
			encoded, err := encodeDefault(f.Type, def)
			if err != nil {
				return err
			}
			buf.WriteString(`,"default":`)
			writeJSONString(buf, encoded)
		}
		if f.Doc != "" {
			buf.WriteString(`,"doc":`)
			writeJSONString(buf, f.Doc)
		}
		buf.WriteByte('}')
	}
	buf.WriteString(`]}`)
	return nil
}

// FromJSON parses a schema document. This is the uncached one-shot form; use
// a Codec when the same text is parsed repeatedly.
func FromJSON(data []byte) (*Schema, error) {
	vdata, vt, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	t, err := typeFromJSON(vdata, vt)
	if err != nil {
		return nil, err
	}
	root, ok := t.(*types.StructType)
	if !ok {
		return nil, fmt.Errorf("%w: can not create schema, root is not a struct: %s", ErrParse, t)
	}
	return FromStruct(root)
}

func typeFromJSON(data []byte, vt jsonparser.ValueType) (types.Type, error) {
	switch vt {
	case jsonparser.String:
		text, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		t, err := types.FromPrimitiveString(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return t, nil
	case jsonparser.Object:
		discriminator, err := jsonparser.GetString(data, keyType)
		if err != nil {
			return nil, fmt.Errorf("%w: type object without '%s' key", ErrParse, keyType)
		}
		switch discriminator {
		case typeStruct:
			return structFromJSON(data)
		case typeList:
			return listFromJSON(data)
		case typeMap:
			return mapFromJSON(data)
		}
		return nil, fmt.Errorf("%w: unknown type discriminator '%s'", ErrParse, discriminator)
	default:
		return nil, fmt.Errorf("%w: can not parse type from JSON %s", ErrParse, vt)
	}
}

func structFromJSON(data []byte) (*types.StructType, error) {
	fieldsData, vt, _, err := jsonparser.Get(data, keyFields)
	if err != nil || vt != jsonparser.Array {
		return nil, fmt.Errorf("%w: struct type without '%s' array", ErrParse, keyFields)
	}
	var fields []types.NestedField
	var innerErr error
	_, err = jsonparser.ArrayEach(fieldsData, func(item []byte, itemType jsonparser.ValueType, _ int, _ error) {
		if innerErr != nil {
			return
		}
		if itemType != jsonparser.Object {
			innerErr = fmt.Errorf("%w: can not parse struct field from JSON %s", ErrParse, itemType)
			return
		}
		var f types.NestedField
		if f, innerErr = fieldFromJSON(item); innerErr == nil {
			fields = append(fields, f)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%w: malformed field array: %v", ErrParse, err)
	}
	if innerErr != nil {
		return nil, innerErr
	}
	st, err := types.StructTypeOf(fields...)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func fieldFromJSON(data []byte) (types.NestedField, error) {
	id, err := getInt32(data, keyID)
	if err != nil {
		return types.NestedField{}, err
	}
	name, err := jsonparser.GetString(data, keyName)
	if err != nil {
		return types.NestedField{}, errMissingKey(keyName)
	}
	required, err := jsonparser.GetBoolean(data, keyRequired)
	if err != nil {
		return types.NestedField{}, errMissingKey(keyRequired)
	}
	typeData, typeKind, _, err := jsonparser.Get(data, keyType)
	if err != nil {
		return types.NestedField{}, errMissingKey(keyType)
	}
	t, err := typeFromJSON(typeData, typeKind)
	if err != nil {
		return types.NestedField{}, err
	}
	f := types.NestedField{ID: id, Name: name, Type: t, Required: required}
	defText, ok, err := optionalString(data, keyDefault)
	if err != nil {
		return types.NestedField{}, err
	}
	if ok {
		def, err := decodeDefault(t, defText)
		if err != nil {
			return types.NestedField{}, err
		}
		f = f.WithDefault(def)
	}
	doc, ok, err := optionalString(data, keyDoc)
	if err != nil {
		return types.NestedField{}, err
	}
	if ok {
		f = f.WithDoc(doc)
	}
	return f, nil
}

// optionalString reads a key that may be absent but, when present, must be a
// JSON string.
func optionalString(data []byte, key string) (string, bool, error) {
	raw, vt, _, err := jsonparser.Get(data, key)
	if err == jsonparser.KeyPathNotFoundError {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: malformed key '%s': %v", ErrParse, key, err)
	}
	if vt != jsonparser.String {
		return "", false, fmt.Errorf("%w: key '%s' must be a string, got %s", ErrParse, key, vt)
	}
	text, err := jsonparser.ParseString(raw)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return text, true, nil
}

func listFromJSON(data []byte) (*types.ListType, error) {
	elementID, err := getInt32(data, keyElementID)
	if err != nil {
		return nil, err
	}
	elementData, elementKind, _, err := jsonparser.Get(data, keyElement)
	if err != nil {
		return nil, errMissingKey(keyElement)
	}
	element, err := typeFromJSON(elementData, elementKind)
	if err != nil {
		return nil, err
	}
	required, err := jsonparser.GetBoolean(data, keyElementRequired)
	if err != nil {
		return nil, errMissingKey(keyElementRequired)
	}
	return types.ListTypeOf(elementID, element, required), nil
}

func mapFromJSON(data []byte) (*types.MapType, error) {
	kid, err := getInt32(data, keyKeyID)
	if err != nil {
		return nil, err
	}
	keyData, keyKind, _, err := jsonparser.Get(data, keyKey)
	if err != nil {
		return nil, errMissingKey(keyKey)
	}
	kt, err := typeFromJSON(keyData, keyKind)
	if err != nil {
		return nil, err
	}
	vid, err := getInt32(data, keyValueID)
	if err != nil {
		return nil, err
	}
	valueData, valueKind, _, err := jsonparser.Get(data, keyValue)
	if err != nil {
		return nil, errMissingKey(keyValue)
	}
	vt, err := typeFromJSON(valueData, valueKind)
	if err != nil {
		return nil, err
	}
	required, err := jsonparser.GetBoolean(data, keyValueRequired)
	if err != nil {
		return nil, errMissingKey(keyValueRequired)
	}
	return types.MapTypeOf(kid, kt, vid, vt, required), nil
}

func getInt32(data []byte, key string) (int32, error) {
	n, err := jsonparser.GetInt(data, key)
	if err != nil {
		return 0, errMissingKey(key)
	}
	if n != int64(int32(n)) {
		return 0, fmt.Errorf("%w: value %d out of range for '%s'", ErrParse, n, key)
	}
	return int32(n), nil
}

func errMissingKey(key string) error {
	return fmt.Errorf("%w: missing or malformed key '%s'", ErrParse, key)
}
