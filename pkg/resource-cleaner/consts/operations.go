// Package consts provides operation name constants for the hook system.
package consts

// Operation names for the hook system.
const (
	// Header operations.
	Analyze = "Analyze"
	Apply   = "Apply"

	// Interactive operations.
	SelectRoot = "SelectRoot"
	Open       = "Open"

	// Initialization operations.
	Init = "Init"
)
