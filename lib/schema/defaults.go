package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/buger/jsonparser"

	"github.com/shenodaguirguis/iceberg/lib/types"
	"github.com/shenodaguirguis/iceberg/lib/value"
)

// Default values travel on the wire as a single JSON string. Primitive
// defaults are the value's natural text form; container defaults carry one
// JSON document inside the string. Decoding is type-directed, so every leaf
// regains its exact kind on re-parse.

func encodeDefault(t types.Type, v value.Value) (string, error) {
	conv, err := types.LiteralFor(t, v)
	if err != nil {
		return "", fmt.Errorf("default value %s does not conform to type %s: %v", v, t, err)
	}
	if types.IsPrimitive(t) {
		return encodePrimitiveText(t, conv)
	}
	var buf bytes.Buffer
	if err := writeValueJSON(&buf, t, conv); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encodePrimitiveText(t types.Type, v value.Value) (string, error) {
	switch t.TypeID() {
	case types.STRING:
		return v.(value.String).Raw(), nil
	case types.TIMESTAMP:
		return v.(value.Timestamp).Format(t.(types.TimestampType).WithZone), nil
	case types.FIXED, types.BINARY:
		// byte defaults are a JSON string document inside the outer string
		quoted, err := json.Marshal(v.(value.Bytes).String())
		if err != nil {
			return "", err
		}
		return string(quoted), nil
	default:
		return v.String(), nil
	}
}

// writeValueJSON renders a container value as one JSON document. Struct
// members emit in field order, map keys in sorted order, so output is
// deterministic.
func writeValueJSON(buf *bytes.Buffer, t types.Type, v value.Value) error {
	if types.IsPrimitive(t) {
		return writeLeafJSON(buf, t, v)
	}
	switch nt := t.(type) {
	case *types.ListType:
		l := v.(value.List)
		buf.WriteByte('[')
		for i, item := range l {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValueJSON(buf, nt.Element, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *types.MapType:
		d := v.(value.Dict)
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, k)
			buf.WriteByte(':')
			if err := writeValueJSON(buf, nt.Value, d[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case *types.StructType:
		d := v.(value.Dict)
		buf.WriteByte('{')
		first := true
		for _, f := range nt.Fields() {
			item, ok := d[f.Name]
			if !ok {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			writeJSONString(buf, f.Name)
			buf.WriteByte(':')
			if err := writeValueJSON(buf, f.Type, item); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// writeLeafJSON emits a primitive as its JSON scalar kind: booleans and
// numerics raw, everything else (string, temporal, uuid, decimal, bytes) as a
// JSON string.
func writeLeafJSON(buf *bytes.Buffer, t types.Type, v value.Value) error {
	switch t.TypeID() {
	case types.BOOLEAN, types.INT, types.LONG, types.FLOAT, types.DOUBLE:
		buf.WriteString(v.String())
	case types.STRING:
		writeJSONString(buf, v.(value.String).Raw())
	case types.TIMESTAMP:
		writeJSONString(buf, v.(value.Timestamp).Format(t.(types.TimestampType).WithZone))
	default:
		// decimal keeps full precision as a string, bytes as base64 text
		writeJSONString(buf, v.String())
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	quoted, _ := json.Marshal(s)
	buf.Write(quoted)
}

func decodeDefault(t types.Type, text string) (value.Value, error) {
	if types.IsPrimitive(t) {
		return decodePrimitiveText(t, text)
	}
	data, vt, _, err := jsonparser.Get([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: can not parse default document '%s': %v", ErrParse, text, err)
	}
	return decodeValueJSON(t, data, vt)
}

func decodePrimitiveText(t types.Type, text string) (value.Value, error) {
	var v value.Value
	var err error
	switch t.TypeID() {
	case types.BOOLEAN:
		var b bool
		if b, err = strconv.ParseBool(text); err == nil {
			v = value.Bool(b)
		}
	case types.INT:
		var n int64
		if n, err = strconv.ParseInt(text, 10, 32); err == nil {
			v = value.Int(n)
		}
	case types.LONG:
		var n int64
		if n, err = strconv.ParseInt(text, 10, 64); err == nil {
			v = value.Long(n)
		}
	case types.FLOAT:
		var f float64
		if f, err = strconv.ParseFloat(text, 32); err == nil {
			v = value.Float(f)
		}
	case types.DOUBLE:
		var f float64
		if f, err = strconv.ParseFloat(text, 64); err == nil {
			v = value.Double(f)
		}
	case types.DECIMAL:
		v, err = value.DecimalFromString(text)
	case types.DATE:
		v, err = value.DateFromString(text)
	case types.TIME:
		v, err = value.TimeFromString(text)
	case types.TIMESTAMP:
		v, err = value.TimestampFromString(text)
	case types.STRING:
		v = value.String(text)
	case types.UUID:
		v, err = value.UUIDFromString(text)
	case types.FIXED, types.BINARY:
		var inner string
		if err = json.Unmarshal([]byte(text), &inner); err == nil {
			v, err = value.BytesFromString(inner)
		}
	default:
		err = fmt.Errorf("non-primitive type %s", t)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: can not decode default '%s' as %s: %v", ErrParse, text, t, err)
	}
	// re-validate so shape mismatches surface at parse time, not evaluation
	conv, err := types.LiteralFor(t, v)
	if err != nil {
		return nil, fmt.Errorf("%w: default '%s' does not conform to %s: %v", ErrParse, text, t, err)
	}
	return conv, nil
}

func decodeValueJSON(t types.Type, data []byte, vt jsonparser.ValueType) (value.Value, error) {
	if types.IsPrimitive(t) {
		return decodeLeafJSON(t, data, vt)
	}
	switch nt := t.(type) {
	case *types.ListType:
		if vt != jsonparser.Array {
			return nil, fmt.Errorf("%w: expected array for %s, got %s", ErrParse, t, vt)
		}
		ret := value.List{}
		var innerErr error
		_, err := jsonparser.ArrayEach(data, func(item []byte, itemType jsonparser.ValueType, _ int, _ error) {
			if innerErr != nil {
				return
			}
			var v value.Value
			if v, innerErr = decodeValueJSON(nt.Element, item, itemType); innerErr == nil {
				ret = append(ret, v)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("%w: malformed array default: %v", ErrParse, err)
		}
		if innerErr != nil {
			return nil, innerErr
		}
		return ret, nil
	case *types.MapType:
		if vt != jsonparser.Object {
			return nil, fmt.Errorf("%w: expected object for %s, got %s", ErrParse, t, vt)
		}
		ret := value.Dict{}
		err := jsonparser.ObjectEach(data, func(key, item []byte, itemType jsonparser.ValueType, _ int) error {
			v, err := decodeValueJSON(nt.Value, item, itemType)
			if err != nil {
				return err
			}
			ret[string(key)] = v
			return nil
		})
		if err != nil {
			return nil, wrapParse(err)
		}
		return ret, nil
	case *types.StructType:
		if vt != jsonparser.Object {
			return nil, fmt.Errorf("%w: expected object for %s, got %s", ErrParse, t, vt)
		}
		ret := value.Dict{}
		err := jsonparser.ObjectEach(data, func(key, item []byte, itemType jsonparser.ValueType, _ int) error {
			f, ok := nt.Field(string(key))
			if !ok {
				return fmt.Errorf("%w: no field named '%s' in %s", ErrParse, key, nt)
			}
			v, err := decodeValueJSON(f.Type, item, itemType)
			if err != nil {
				return err
			}
			ret[string(key)] = v
			return nil
		})
		if err != nil {
			return nil, wrapParse(err)
		}
		return ret, nil
	}
	return nil, fmt.Errorf("%w: unknown nested type %s", ErrParse, t)
}

func decodeLeafJSON(t types.Type, data []byte, vt jsonparser.ValueType) (value.Value, error) {
	switch t.TypeID() {
	case types.BOOLEAN:
		if vt != jsonparser.Boolean {
			return nil, errLeafKind(t, vt)
		}
	case types.INT, types.LONG, types.FLOAT, types.DOUBLE:
		if vt != jsonparser.Number {
			return nil, errLeafKind(t, vt)
		}
	case types.FIXED, types.BINARY:
		if vt != jsonparser.String {
			return nil, errLeafKind(t, vt)
		}
		// inside a document the base64 text is a plain JSON string
		inner, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		b, err := value.BytesFromString(inner)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		conv, err := types.LiteralFor(t, b)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return conv, nil
	default:
		if vt != jsonparser.String {
			return nil, errLeafKind(t, vt)
		}
	}
	text, err := unescapeLeaf(data, vt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return decodePrimitiveText(t, text)
}

func unescapeLeaf(data []byte, vt jsonparser.ValueType) (string, error) {
	if vt != jsonparser.String {
		return string(data), nil
	}
	return jsonparser.ParseString(data)
}

func errLeafKind(t types.Type, vt jsonparser.ValueType) error {
	return fmt.Errorf("%w: expected %s value, got JSON %s", ErrParse, t, vt)
}

func wrapParse(err error) error {
	if errors.Is(err, ErrParse) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrParse, err)
}
