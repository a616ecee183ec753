package textenc

import "errors"

// Error definitions for textenc package.
var (
	ErrDecode = errors.New("failed to decode text")
	ErrEncode = errors.New("failed to encode text")
)
