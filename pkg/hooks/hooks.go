// Package hooks provides a middleware system for resource cleaner operations.
package hooks

import "time"

// MetadataStartedAt is the Metadata key holding the operation start time.
const MetadataStartedAt = "startedAt"

// HookContext is shared by every hook of one operation run.
type HookContext struct {
	OperationName string
	// Parameters are the operation inputs, keyed by parameter name.
	Parameters map[string]interface{}
	// Results are filled by the operation before post-hooks run.
	Results map[string]interface{}
	// Error is the operation failure seen by error hooks.
	Error    error
	Metadata map[string]interface{}
}

// Elapsed returns the time since the operation started, when known.
func (c *HookContext) Elapsed() (time.Duration, bool) {
	startedAt, ok := c.Metadata[MetadataStartedAt].(time.Time)
	if !ok {
		return 0, false
	}
	return time.Since(startedAt), true
}

// Hook defines the interface for all hooks.
type Hook interface {
	Name() string
	// Priority orders hooks of the same stage, lower first.
	Priority() int
	Execute(ctx *HookContext) error
}

// PreHook executes before an operation.
type PreHook interface {
	Hook
	PreExecute(ctx *HookContext) error
}

// PostHook executes after an operation succeeded.
type PostHook interface {
	Hook
	PostExecute(ctx *HookContext) error
}

// ErrorHook executes when an operation fails.
type ErrorHook interface {
	Hook
	OnError(ctx *HookContext) error
}
