package report

import "errors"

// ErrNilResult is returned when there is nothing to render.
var ErrNilResult = errors.New("no analysis result to render")
