package exprs

import (
	"fmt"

	"github.com/shenodaguirguis/iceberg/lib/schema"
	"github.com/shenodaguirguis/iceberg/lib/types"
	"github.com/shenodaguirguis/iceberg/lib/value"
)

// Bound is an expression resolved against one concrete schema. Column terms
// carry the field id and type instead of a name, and literals have been
// coerced to the column type, so the tree can be evaluated directly. A bound
// tree must only be evaluated against rows of the schema it was bound to.
type Bound interface {
	isBound()
	Op() Operation
	Negate() Bound
	String() string
}

type boundConstant bool

// BoundTrue and BoundFalse are the bound constant expressions.
var (
	BoundTrue  Bound = boundConstant(true)
	BoundFalse Bound = boundConstant(false)
)

func (c boundConstant) isBound() {}
func (c boundConstant) Op() Operation {
	if c {
		return OpTrue
	}
	return OpFalse
}
func (c boundConstant) Negate() Bound {
	return boundConstant(!c)
}
func (c boundConstant) String() string {
	return c.Op().String()
}

type BoundAnd struct {
	left  Bound
	right Bound
}

func (a *BoundAnd) isBound()      {}
func (a *BoundAnd) Op() Operation { return OpAnd }
func (a *BoundAnd) Left() Bound   { return a.left }
func (a *BoundAnd) Right() Bound  { return a.right }
func (a *BoundAnd) Negate() Bound { return newBoundOr(a.left.Negate(), a.right.Negate()) }
func (a *BoundAnd) String() string {
	return fmt.Sprintf("(%s and %s)", a.left, a.right)
}

type BoundOr struct {
	left  Bound
	right Bound
}

func (o *BoundOr) isBound()      {}
func (o *BoundOr) Op() Operation { return OpOr }
func (o *BoundOr) Left() Bound   { return o.left }
func (o *BoundOr) Right() Bound  { return o.right }
func (o *BoundOr) Negate() Bound { return newBoundAnd(o.left.Negate(), o.right.Negate()) }
func (o *BoundOr) String() string {
	return fmt.Sprintf("(%s or %s)", o.left, o.right)
}

// BoundReference is a direct accessor for one column: the permanent field id
// plus the type that drives comparison semantics.
type BoundReference struct {
	FieldID int32
	Type    types.Type
	Name    string
}

type BoundPredicate struct {
	op      Operation
	ref     BoundReference
	literal value.Value
}

func (p *BoundPredicate) isBound()             {}
func (p *BoundPredicate) Op() Operation        { return p.op }
func (p *BoundPredicate) Ref() BoundReference  { return p.ref }
func (p *BoundPredicate) Literal() value.Value { return p.literal }
func (p *BoundPredicate) Negate() Bound {
	return &BoundPredicate{op: p.op.Negate(), ref: p.ref, literal: p.literal}
}
func (p *BoundPredicate) String() string {
	if p.literal == nil {
		return fmt.Sprintf("ref(%d) %s", p.ref.FieldID, p.op)
	}
	return fmt.Sprintf("ref(%d) %s %s", p.ref.FieldID, p.op, p.literal)
}

func newBoundAnd(left, right Bound) Bound {
	if left == BoundFalse || right == BoundFalse {
		return BoundFalse
	}
	if left == BoundTrue {
		return right
	}
	if right == BoundTrue {
		return left
	}
	return &BoundAnd{left: left, right: right}
}

func newBoundOr(left, right Bound) Bound {
	if left == BoundTrue || right == BoundTrue {
		return BoundTrue
	}
	if left == BoundFalse {
		return right
	}
	if right == BoundFalse {
		return left
	}
	return &BoundOr{left: left, right: right}
}

// Bind resolves every predicate's column name against s, case-insensitively,
// and coerces literals to the resolved column types. The input tree is never
// mutated. Null checks against required columns fold to constants: a required
// column can never be null.
func Bind(s *schema.Schema, e Expression) (Bound, error) {
	switch node := e.(type) {
	case constant:
		if node {
			return BoundTrue, nil
		}
		return BoundFalse, nil
	case *And:
		left, err := Bind(s, node.Left())
		if err != nil {
			return nil, err
		}
		right, err := Bind(s, node.Right())
		if err != nil {
			return nil, err
		}
		return newBoundAnd(left, right), nil
	case *Or:
		left, err := Bind(s, node.Left())
		if err != nil {
			return nil, err
		}
		right, err := Bind(s, node.Right())
		if err != nil {
			return nil, err
		}
		return newBoundOr(left, right), nil
	case *UnboundPredicate:
		return bindPredicate(s, node)
	default:
		return nil, fmt.Errorf("%w: unknown expression node %T", ErrInvalidPredicate, e)
	}
}

func bindPredicate(s *schema.Schema, p *UnboundPredicate) (Bound, error) {
	f, ok := s.FindFieldByName(p.Name())
	if !ok {
		return nil, fmt.Errorf("%w: no column named '%s' in schema", ErrInvalidReference, p.Name())
	}
	ref := BoundReference{FieldID: f.ID, Type: f.Type, Name: f.Name}
	switch p.Op() {
	case OpIsNull:
		if f.Required {
			return BoundFalse, nil
		}
		return &BoundPredicate{op: OpIsNull, ref: ref}, nil
	case OpNotNull:
		if f.Required {
			return BoundTrue, nil
		}
		return &BoundPredicate{op: OpNotNull, ref: ref}, nil
	}
	lit, err := types.LiteralFor(f.Type, p.Literal())
	if err != nil {
		return nil, fmt.Errorf("%w: column '%s': %v", ErrInvalidPredicate, f.Name, err)
	}
	return &BoundPredicate{op: p.Op(), ref: ref, literal: lit}, nil
}
