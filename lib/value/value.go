package value

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Value is a runtime literal tagged by the column type it was produced
// against. Values are immutable once constructed; containers return copies
// from Clone rather than sharing backing storage.
type Value interface {
	isValue()
	Equal(v Value) bool
	String() string
	Clone() Value
}

var _ Value = Bool(true)
var _ Value = Int(0)
var _ Value = Long(0)
var _ Value = Float(0)
var _ Value = Double(0)
var _ Value = String("")
var _ Value = Decimal{}
var _ Value = List{}
var _ Value = Dict{}

type Bool bool

func (b Bool) isValue() {}
func (b Bool) Equal(v Value) bool {
	other, ok := v.(Bool)
	return ok && other == b
}
func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}
func (b Bool) Clone() Value {
	return b
}

type Int int32

func (i Int) isValue() {}
func (i Int) Equal(v Value) bool {
	other, ok := v.(Int)
	return ok && other == i
}
func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}
func (i Int) Clone() Value {
	return i
}

type Long int64

func (l Long) isValue() {}
func (l Long) Equal(v Value) bool {
	other, ok := v.(Long)
	return ok && other == l
}
func (l Long) String() string {
	return strconv.FormatInt(int64(l), 10)
}
func (l Long) Clone() Value {
	return l
}

type Float float32

func (f Float) isValue() {}
func (f Float) Equal(v Value) bool {
	other, ok := v.(Float)
	return ok && other == f
}
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
func (f Float) Clone() Value {
	return f
}

type Double float64

func (d Double) isValue() {}
func (d Double) Equal(v Value) bool {
	other, ok := v.(Double)
	return ok && other == d
}
func (d Double) String() string {
	return strconv.FormatFloat(float64(d), 'g', -1, 64)
}
func (d Double) Clone() Value {
	return d
}

type String string

func (s String) isValue() {}
func (s String) Equal(v Value) bool {
	other, ok := v.(String)
	return ok && other == s
}
func (s String) String() string {
	return strconv.Quote(string(s))
}
func (s String) Clone() Value {
	return s
}

// Raw returns the string content without quoting.
func (s String) Raw() string {
	return string(s)
}

// Decimal is an arbitrary-precision decimal value.
type Decimal struct {
	D decimal.Decimal
}

func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{D: d}
}

// DecimalFromString parses the plain number form, e.g. "12.345".
func DecimalFromString(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("can not parse decimal from '%s': %v", s, err)
	}
	return Decimal{D: d}, nil
}

func (d Decimal) isValue() {}
func (d Decimal) Equal(v Value) bool {
	other, ok := v.(Decimal)
	return ok && other.D.Equal(d.D)
}
func (d Decimal) String() string {
	return d.D.String()
}
func (d Decimal) Clone() Value {
	return d
}
