package exprs

// Operation identifies what an expression node does. Predicate operations
// negate into other predicate operations, which is what lets negation be
// pushed all the way to the leaves at construction time.
type Operation int

const (
	OpTrue Operation = iota
	OpFalse
	OpIsNull
	OpNotNull
	OpEq
	OpNotEq
	OpLt
	OpLtEq
	OpGt
	OpGtEq
	OpAnd
	OpOr
	OpNot
)

// Negate returns the operation of the negated expression.
func (op Operation) Negate() Operation {
	switch op {
	case OpTrue:
		return OpFalse
	case OpFalse:
		return OpTrue
	case OpIsNull:
		return OpNotNull
	case OpNotNull:
		return OpIsNull
	case OpEq:
		return OpNotEq
	case OpNotEq:
		return OpEq
	case OpLt:
		return OpGtEq
	case OpLtEq:
		return OpGt
	case OpGt:
		return OpLtEq
	case OpGtEq:
		return OpLt
	case OpAnd:
		return OpOr
	case OpOr:
		return OpAnd
	default:
		return OpNot
	}
}

func (op Operation) String() string {
	switch op {
	case OpTrue:
		return "true"
	case OpFalse:
		return "false"
	case OpIsNull:
		return "is null"
	case OpNotNull:
		return "not null"
	case OpEq:
		return "=="
	case OpNotEq:
		return "!="
	case OpLt:
		return "<"
	case OpLtEq:
		return "<="
	case OpGt:
		return ">"
	case OpGtEq:
		return ">="
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return "not"
	}
}
