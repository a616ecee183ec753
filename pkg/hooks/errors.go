package hooks

import "errors"

var (
	// ErrNilHook is returned when registering a nil hook.
	ErrNilHook = errors.New("hook cannot be nil")
)
