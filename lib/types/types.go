package types

import (
	"fmt"
	"regexp"
	"strconv"
)

// TypeID discriminates every kind of type in the system. All structural
// dispatch switches on it; nothing inspects Go types reflectively.
type TypeID int

const (
	BOOLEAN TypeID = iota
	INT
	LONG
	FLOAT
	DOUBLE
	DECIMAL
	DATE
	TIME
	TIMESTAMP
	STRING
	UUID
	FIXED
	BINARY
	STRUCT
	LIST
	MAP
)

// Type is a recursive, immutable description of a column type. Primitive
// types render their canonical wire string from String(); nested types render
// a readable debug form that never appears on the wire.
type Type interface {
	isType()
	TypeID() TypeID
	String() string
}

var _ Type = BooleanType{}
var _ Type = IntType{}
var _ Type = LongType{}
var _ Type = FloatType{}
var _ Type = DoubleType{}
var _ Type = DecimalType{}
var _ Type = DateType{}
var _ Type = TimeType{}
var _ Type = TimestampType{}
var _ Type = StringType{}
var _ Type = UUIDType{}
var _ Type = FixedType{}
var _ Type = BinaryType{}
var _ Type = (*StructType)(nil)
var _ Type = (*ListType)(nil)
var _ Type = (*MapType)(nil)

type BooleanType struct{}

func (BooleanType) isType()        {}
func (BooleanType) TypeID() TypeID { return BOOLEAN }
func (BooleanType) String() string { return "boolean" }

type IntType struct{}

func (IntType) isType()        {}
func (IntType) TypeID() TypeID { return INT }
func (IntType) String() string { return "int" }

type LongType struct{}

func (LongType) isType()        {}
func (LongType) TypeID() TypeID { return LONG }
func (LongType) String() string { return "long" }

type FloatType struct{}

func (FloatType) isType()        {}
func (FloatType) TypeID() TypeID { return FLOAT }
func (FloatType) String() string { return "float" }

type DoubleType struct{}

func (DoubleType) isType()        {}
func (DoubleType) TypeID() TypeID { return DOUBLE }
func (DoubleType) String() string { return "double" }

type DecimalType struct {
	Precision int
	Scale     int
}

func DecimalTypeOf(precision, scale int) DecimalType {
	return DecimalType{Precision: precision, Scale: scale}
}

func (DecimalType) isType()          {}
func (DecimalType) TypeID() TypeID   { return DECIMAL }
func (t DecimalType) String() string { return fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale) }

type DateType struct{}

func (DateType) isType()        {}
func (DateType) TypeID() TypeID { return DATE }
func (DateType) String() string { return "date" }

type TimeType struct{}

func (TimeType) isType()        {}
func (TimeType) TypeID() TypeID { return TIME }
func (TimeType) String() string { return "time" }

type TimestampType struct {
	WithZone bool
}

func (TimestampType) isType()        {}
func (TimestampType) TypeID() TypeID { return TIMESTAMP }
func (t TimestampType) String() string {
	if t.WithZone {
		return "timestamptz"
	}
	return "timestamp"
}

type StringType struct{}

func (StringType) isType()        {}
func (StringType) TypeID() TypeID { return STRING }
func (StringType) String() string { return "string" }

type UUIDType struct{}

func (UUIDType) isType()        {}
func (UUIDType) TypeID() TypeID { return UUID }
func (UUIDType) String() string { return "uuid" }

type FixedType struct {
	Length int
}

func FixedTypeOf(length int) FixedType {
	return FixedType{Length: length}
}

func (FixedType) isType()          {}
func (FixedType) TypeID() TypeID   { return FIXED }
func (t FixedType) String() string { return fmt.Sprintf("fixed[%d]", t.Length) }

type BinaryType struct{}

func (BinaryType) isType()        {}
func (BinaryType) TypeID() TypeID { return BINARY }
func (BinaryType) String() string { return "binary" }

// IsPrimitive reports whether t is a leaf type.
func IsPrimitive(t Type) bool {
	switch t.TypeID() {
	case STRUCT, LIST, MAP:
		return false
	}
	return true
}

var (
	decimalRegex = regexp.MustCompile(`^decimal\(\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	fixedRegex   = regexp.MustCompile(`^fixed\[\s*(\d+)\s*\]$`)
)

// FromPrimitiveString parses a canonical primitive string such as "int",
// "decimal(9,2)" or "fixed[16]".
func FromPrimitiveString(s string) (Type, error) {
	switch s {
	case "boolean":
		return BooleanType{}, nil
	case "int":
		return IntType{}, nil
	case "long":
		return LongType{}, nil
	case "float":
		return FloatType{}, nil
	case "double":
		return DoubleType{}, nil
	case "date":
		return DateType{}, nil
	case "time":
		return TimeType{}, nil
	case "timestamp":
		return TimestampType{}, nil
	case "timestamptz":
		return TimestampType{WithZone: true}, nil
	case "string":
		return StringType{}, nil
	case "uuid":
		return UUIDType{}, nil
	case "binary":
		return BinaryType{}, nil
	}
	if m := decimalRegex.FindStringSubmatch(s); m != nil {
		precision, _ := strconv.Atoi(m[1])
		scale, _ := strconv.Atoi(m[2])
		return DecimalTypeOf(precision, scale), nil
	}
	if m := fixedRegex.FindStringSubmatch(s); m != nil {
		length, _ := strconv.Atoi(m[1])
		return FixedTypeOf(length), nil
	}
	return nil, fmt.Errorf("%w: unknown primitive type: '%s'", ErrInvalidSchema, s)
}
