// Package header parses and regenerates resource headers: files of
// "#define NAME VALUE" numeric symbol declarations.
package header

import "errors"

// Error definitions for header package.
var (
	ErrNoDefinitionsFound = errors.New("no numeric #define found in header")
)
