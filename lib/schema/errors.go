package schema

import (
	"errors"
	"fmt"

	"github.com/shenodaguirguis/iceberg/lib/types"
)

// ErrParse marks malformed schema JSON: unknown type discriminators, missing
// required keys, wrong JSON kinds, defaults whose decoded shape does not
// match the field's type. Discriminate with errors.Is.
var ErrParse = errors.New("schema parse error")

func errDuplicateID(id int32, first, second string) error {
	return fmt.Errorf("%w: duplicate field id %d used by '%s' and '%s'", types.ErrInvalidSchema, id, first, second)
}
