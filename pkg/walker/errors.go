// Package walker enumerates the source files of a tree that may reference
// resource symbols, and locates the resource header itself.
package walker

import "errors"

// Error definitions for walker package.
var (
	ErrHeaderNotFound = errors.New("resource header not found under root")
)
