package exprs

import (
	"fmt"

	"github.com/shenodaguirguis/iceberg/lib/value"
)

// Row supplies values by permanent field id. A false second return means the
// value is absent, which is legal for optional columns.
type Row interface {
	Get(fieldID int32) (value.Value, bool)
}

type mapRow map[int32]value.Value

func (r mapRow) Get(fieldID int32) (value.Value, bool) {
	v, ok := r[fieldID]
	return v, ok
}

// RowOf adapts a field-id keyed map to the Row interface.
func RowOf(values map[int32]value.Value) Row {
	return mapRow(values)
}

// Evaluate applies a bound expression to one row. And/Or short-circuit left
// to right: once the left side determines the result, the right side is not
// evaluated at all, so predicates over absent partition values on the right
// never fault. Evaluations of independent rows share no state and may run
// concurrently.
func Evaluate(b Bound, row Row) (bool, error) {
	switch node := b.(type) {
	case boundConstant:
		return bool(node), nil
	case *BoundAnd:
		left, err := Evaluate(node.Left(), row)
		if err != nil {
			return false, err
		}
		if !left {
			return false, nil
		}
		return Evaluate(node.Right(), row)
	case *BoundOr:
		left, err := Evaluate(node.Left(), row)
		if err != nil {
			return false, err
		}
		if left {
			return true, nil
		}
		return Evaluate(node.Right(), row)
	case *BoundPredicate:
		return evalPredicate(node, row)
	default:
		return false, fmt.Errorf("%w: unknown bound node %T", ErrInvalidPredicate, b)
	}
}

func evalPredicate(p *BoundPredicate, row Row) (bool, error) {
	v, ok := row.Get(p.ref.FieldID)
	switch p.op {
	case OpIsNull:
		return !ok, nil
	case OpNotNull:
		return ok, nil
	}
	if !ok {
		return false, fmt.Errorf("%w: row has no value for field %d ('%s')", ErrMissingValue, p.ref.FieldID, p.ref.Name)
	}
	cmp, err := value.Compare(v, p.literal)
	if err != nil {
		return false, fmt.Errorf("field %d ('%s'): %v", p.ref.FieldID, p.ref.Name, err)
	}
	switch p.op {
	case OpEq:
		return cmp == 0, nil
	case OpNotEq:
		return cmp != 0, nil
	case OpLt:
		return cmp < 0, nil
	case OpLtEq:
		return cmp <= 0, nil
	case OpGt:
		return cmp > 0, nil
	case OpGtEq:
		return cmp >= 0, nil
	default:
		return false, fmt.Errorf("%w: operation '%s' is not evaluable", ErrInvalidPredicate, p.op)
	}
}
