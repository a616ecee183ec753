package opening

import "errors"

var (
	// ErrHeaderPathMissing is returned when the operation did not report the header it rewrote.
	ErrHeaderPathMissing = errors.New("cannot open header: headerPath result is missing")
)
