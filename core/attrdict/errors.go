// core/attrdict/errors.go
package attrdict

import (
	"errors"
	"fmt"
)

// ErrReservedKey is the class all reserved-metadata write failures belong
// to; match with errors.Is, or errors.As against *ReservedKeyError for the
// offending key.
var ErrReservedKey = errors.New("reserved metadata key")

// ReservedKeyError reports a rejected write to a protected metadata key.
type ReservedKeyError struct {
	Key string
}

func (e *ReservedKeyError) Error() string {
	return fmt.Sprintf("cannot write reserved metadata key %q", e.Key)
}

func (e *ReservedKeyError) Unwrap() error { return ErrReservedKey }
