package types

import "errors"

// ErrInvalidSchema marks malformed type trees: duplicate field ids, unknown
// primitive strings, malformed nested types. Discriminate with errors.Is.
var ErrInvalidSchema = errors.New("invalid schema")
