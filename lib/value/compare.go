package value

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Compare orders two values of the same family. Numeric kinds compare after
// widening to the wider representation, so Int(3) and Long(3) are ordered
// equal even though Equal treats them as distinct. Values from different
// families are not comparable and produce an error.
func Compare(left, right Value) (int, error) {
	switch l := left.(type) {
	case Bool:
		if r, ok := right.(Bool); ok {
			return compareBools(bool(l), bool(r)), nil
		}
	case Int, Long, Float, Double:
		if isNumeric(right) {
			return compareNumerics(left, right), nil
		}
		if r, ok := right.(Decimal); ok {
			if d, ok := asDecimal(left); ok {
				return d.Cmp(r.D), nil
			}
		}
	case Decimal:
		if r, ok := right.(Decimal); ok {
			return l.D.Cmp(r.D), nil
		}
		if d, ok := asDecimal(right); ok {
			return l.D.Cmp(d), nil
		}
	case String:
		if r, ok := right.(String); ok {
			return compareOrdered(string(l), string(r)), nil
		}
	case Date:
		if r, ok := right.(Date); ok {
			return compareOrdered(int32(l), int32(r)), nil
		}
	case Time:
		if r, ok := right.(Time); ok {
			return compareOrdered(int64(l), int64(r)), nil
		}
	case Timestamp:
		if r, ok := right.(Timestamp); ok {
			return compareOrdered(int64(l), int64(r)), nil
		}
	case Bytes:
		if r, ok := right.(Bytes); ok {
			return bytes.Compare(l, r), nil
		}
	case UUID:
		if r, ok := right.(UUID); ok {
			return bytes.Compare(l[:], r[:]), nil
		}
	}
	return 0, fmt.Errorf("values '%s' and '%s' are not comparable", left, right)
}

func isNumeric(v Value) bool {
	switch v.(type) {
	case Int, Long, Float, Double:
		return true
	}
	return false
}

func isFloating(v Value) bool {
	switch v.(type) {
	case Float, Double:
		return true
	}
	return false
}

func compareNumerics(left, right Value) int {
	if isFloating(left) || isFloating(right) {
		return compareOrdered(asFloat64(left), asFloat64(right))
	}
	return compareOrdered(asInt64(left), asInt64(right))
}

func asInt64(v Value) int64 {
	switch t := v.(type) {
	case Int:
		return int64(t)
	case Long:
		return int64(t)
	}
	return 0
}

func asFloat64(v Value) float64 {
	switch t := v.(type) {
	case Int:
		return float64(t)
	case Long:
		return float64(t)
	case Float:
		return float64(t)
	case Double:
		return float64(t)
	}
	return 0
}

func asDecimal(v Value) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case Int:
		return decimal.NewFromInt(int64(t)), true
	case Long:
		return decimal.NewFromInt(int64(t)), true
	case Decimal:
		return t.D, true
	}
	return decimal.Decimal{}, false
}

func compareBools(l, r bool) int {
	if l == r {
		return 0
	}
	if !l {
		return -1
	}
	return 1
}

func compareOrdered[T int32 | int64 | float64 | string](l, r T) int {
	if l < r {
		return -1
	}
	if l > r {
		return 1
	}
	return 0
}
