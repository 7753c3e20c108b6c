package exprs

import (
	"fmt"

	"github.com/shenodaguirguis/iceberg/lib/value"
)

// Expression is an unbound predicate tree. Column terms are plain names; the
// tree says nothing about any concrete schema until Bind resolves it.
// Trees are immutable: combinators and Negate return new trees.
//
// Constructors normalize eagerly. And/Or fold constant children, and Negate
// rewrites via De Morgan and predicate-operation flips, so no tree ever
// contains a generic "not" node: negation only exists as the negated
// operation on a leaf.
type Expression interface {
	isExpression()
	Op() Operation
	Negate() Expression
	String() string
}

var (
	// True matches every row.
	True Expression = constant(true)
	// False matches no row.
	False Expression = constant(false)
)

type constant bool

func (c constant) isExpression() {}
func (c constant) Op() Operation {
	if c {
		return OpTrue
	}
	return OpFalse
}
func (c constant) Negate() Expression {
	return constant(!c)
}
func (c constant) String() string {
	return c.Op().String()
}

type And struct {
	left  Expression
	right Expression
}

func (a *And) isExpression()      {}
func (a *And) Op() Operation      { return OpAnd }
func (a *And) Left() Expression   { return a.left }
func (a *And) Right() Expression  { return a.right }
func (a *And) Negate() Expression { return NewOr(a.left.Negate(), a.right.Negate()) }
func (a *And) String() string {
	return fmt.Sprintf("(%s and %s)", a.left, a.right)
}

type Or struct {
	left  Expression
	right Expression
}

func (o *Or) isExpression()      {}
func (o *Or) Op() Operation      { return OpOr }
func (o *Or) Left() Expression   { return o.left }
func (o *Or) Right() Expression  { return o.right }
func (o *Or) Negate() Expression { return NewAnd(o.left.Negate(), o.right.Negate()) }
func (o *Or) String() string {
	return fmt.Sprintf("(%s or %s)", o.left, o.right)
}

// UnboundPredicate compares the column with the given name against a
// literal. Unary operations (is null, not null) carry no literal.
type UnboundPredicate struct {
	op      Operation
	name    string
	literal value.Value
}

func (p *UnboundPredicate) isExpression()        {}
func (p *UnboundPredicate) Op() Operation        { return p.op }
func (p *UnboundPredicate) Name() string         { return p.name }
func (p *UnboundPredicate) Literal() value.Value { return p.literal }
func (p *UnboundPredicate) Negate() Expression {
	return &UnboundPredicate{op: p.op.Negate(), name: p.name, literal: p.literal}
}
func (p *UnboundPredicate) String() string {
	if p.literal == nil {
		return fmt.Sprintf("%s %s", p.name, p.op)
	}
	return fmt.Sprintf("%s %s %s", p.name, p.op, p.literal)
}

// NewAnd folds constants: and(true, x) is x, and(false, x) is false.
func NewAnd(left, right Expression) Expression {
	if left == False || right == False {
		return False
	}
	if left == True {
		return right
	}
	if right == True {
		return left
	}
	return &And{left: left, right: right}
}

// NewOr folds constants: or(true, x) is true, or(false, x) is x.
func NewOr(left, right Expression) Expression {
	if left == True || right == True {
		return True
	}
	if left == False {
		return right
	}
	if right == False {
		return left
	}
	return &Or{left: left, right: right}
}

// NewNot pushes negation inward immediately; the result never wraps a
// compound node.
func NewNot(child Expression) Expression {
	return child.Negate()
}

func Equal(name string, v value.Value) Expression {
	return &UnboundPredicate{op: OpEq, name: name, literal: v}
}

func NotEqual(name string, v value.Value) Expression {
	return &UnboundPredicate{op: OpNotEq, name: name, literal: v}
}

func LessThan(name string, v value.Value) Expression {
	return &UnboundPredicate{op: OpLt, name: name, literal: v}
}

func LessThanOrEqual(name string, v value.Value) Expression {
	return &UnboundPredicate{op: OpLtEq, name: name, literal: v}
}

func GreaterThan(name string, v value.Value) Expression {
	return &UnboundPredicate{op: OpGt, name: name, literal: v}
}

func GreaterThanOrEqual(name string, v value.Value) Expression {
	return &UnboundPredicate{op: OpGtEq, name: name, literal: v}
}

func IsNull(name string) Expression {
	return &UnboundPredicate{op: OpIsNull, name: name}
}

func NotNull(name string) Expression {
	return &UnboundPredicate{op: OpNotNull, name: name}
}
