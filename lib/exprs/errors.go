package exprs

import "errors"

var (
	// ErrInvalidReference marks a predicate naming a column the schema does
	// not have.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrInvalidPredicate marks a literal that can not be coerced to the
	// resolved column's type.
	ErrInvalidPredicate = errors.New("invalid predicate")

	// ErrMissingValue marks a row that omitted a value the evaluator had to
	// read. This is a contract violation of the row supplier, not of the
	// expression.
	ErrMissingValue = errors.New("missing value")
)
