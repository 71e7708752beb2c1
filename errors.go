package calendar

import (
	"errors"

	"github.com/lifedash/lifedash-go/internal/types"
)

// ErrNotFound is returned when a read targets a record or document the
// backend does not have. Re-exported so callers compare against a
// single symbol.
var ErrNotFound = types.ErrNotFound

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return errors.Is(err, types.ErrNotFound) }
