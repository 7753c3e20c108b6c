package types

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shenodaguirguis/iceberg/lib/value"
)

// LiteralFor validates v against t, widening where lossless, and returns the
// value in the type's own representation. It is the single coercion point
// used both by predicate binding and by default-value validation.
func LiteralFor(t Type, v value.Value) (value.Value, error) {
	switch t.TypeID() {
	case BOOLEAN:
		if b, ok := v.(value.Bool); ok {
			return b, nil
		}
	case INT:
		switch n := v.(type) {
		case value.Int:
			return n, nil
		case value.Long:
			if int64(n) == int64(int32(n)) {
				return value.Int(n), nil
			}
			return nil, fmt.Errorf("value %d out of range for type int", int64(n))
		}
	case LONG:
		switch n := v.(type) {
		case value.Int:
			return value.Long(n), nil
		case value.Long:
			return n, nil
		}
	case FLOAT:
		switch n := v.(type) {
		case value.Int:
			return value.Float(n), nil
		case value.Long:
			return value.Float(n), nil
		case value.Float:
			return n, nil
		}
	case DOUBLE:
		switch n := v.(type) {
		case value.Int:
			return value.Double(n), nil
		case value.Long:
			return value.Double(n), nil
		case value.Float:
			return value.Double(n), nil
		case value.Double:
			return n, nil
		}
	case DECIMAL:
		dt := t.(DecimalType)
		switch n := v.(type) {
		case value.Int:
			return value.NewDecimal(decimal.NewFromInt(int64(n))), nil
		case value.Long:
			return value.NewDecimal(decimal.NewFromInt(int64(n))), nil
		case value.Decimal:
			if int(-n.D.Exponent()) > dt.Scale {
				return nil, fmt.Errorf("value %s does not fit scale %d", n, dt.Scale)
			}
			return n, nil
		}
	case DATE:
		switch d := v.(type) {
		case value.Date:
			return d, nil
		case value.String:
			return value.DateFromString(d.Raw())
		}
	case TIME:
		switch d := v.(type) {
		case value.Time:
			return d, nil
		case value.String:
			return value.TimeFromString(d.Raw())
		}
	case TIMESTAMP:
		switch d := v.(type) {
		case value.Timestamp:
			return d, nil
		case value.String:
			return value.TimestampFromString(d.Raw())
		}
	case STRING:
		if s, ok := v.(value.String); ok {
			return s, nil
		}
	case UUID:
		switch u := v.(type) {
		case value.UUID:
			return u, nil
		case value.String:
			return value.UUIDFromString(u.Raw())
		}
	case FIXED:
		ft := t.(FixedType)
		if b, ok := v.(value.Bytes); ok {
			if len(b) != ft.Length {
				return nil, fmt.Errorf("value of %d bytes does not fit %s", len(b), ft)
			}
			return b, nil
		}
	case BINARY:
		if b, ok := v.(value.Bytes); ok {
			return b, nil
		}
	case LIST:
		lt := t.(*ListType)
		if l, ok := v.(value.List); ok {
			ret := make(value.List, 0, len(l))
			for _, item := range l {
				conv, err := LiteralFor(lt.Element, item)
				if err != nil {
					return nil, err
				}
				ret = append(ret, conv)
			}
			return ret, nil
		}
	case MAP:
		mt := t.(*MapType)
		if d, ok := v.(value.Dict); ok {
			ret := make(value.Dict, len(d))
			for k, item := range d {
				conv, err := LiteralFor(mt.Value, item)
				if err != nil {
					return nil, err
				}
				ret[k] = conv
			}
			return ret, nil
		}
	case STRUCT:
		st := t.(*StructType)
		if d, ok := v.(value.Dict); ok {
			ret := make(value.Dict, len(d))
			for k, item := range d {
				f, ok := st.Field(k)
				if !ok {
					return nil, fmt.Errorf("no field named '%s' in %s", k, st)
				}
				conv, err := LiteralFor(f.Type, item)
				if err != nil {
					return nil, err
				}
				ret[k] = conv
			}
			return ret, nil
		}
	}
	return nil, fmt.Errorf("value %s is not coercible to type %s", v, t)
}
