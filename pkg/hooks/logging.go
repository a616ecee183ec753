package hooks

import (
	"fmt"
	"time"

	"github.com/lerenn/resource-cleaner/pkg/logger"
)

// LoggingHook provides logging functionality for all operations.
type LoggingHook struct {
	logger logger.Logger
}

// NewLoggingHook creates a new LoggingHook instance.
func NewLoggingHook(logger logger.Logger) *LoggingHook {
	return &LoggingHook{
		logger: logger,
	}
}

// RegisterForOperations registers the hook at every stage of the given operations.
func (h *LoggingHook) RegisterForOperations(hm HookManagerInterface, operations ...string) error {
	for _, op := range operations {
		if err := hm.RegisterPreHook(op, h); err != nil {
			return err
		}
		if err := hm.RegisterPostHook(op, h); err != nil {
			return err
		}
		if err := hm.RegisterErrorHook(op, h); err != nil {
			return err
		}
	}
	return nil
}

// Name returns the hook name.
func (h *LoggingHook) Name() string {
	return "logging"
}

// Priority returns the hook priority (lower numbers execute first).
func (h *LoggingHook) Priority() int {
	return 100
}

// Execute is a no-op for LoggingHook as it implements specific methods.
func (h *LoggingHook) Execute(_ *HookContext) error {
	return nil
}

// PreExecute logs the start of an operation.
func (h *LoggingHook) PreExecute(ctx *HookContext) error {
	h.logger.Logf("Starting operation: %s with params: %v", ctx.OperationName, ctx.Parameters)
	return nil
}

// PostExecute logs the completion of an operation.
func (h *LoggingHook) PostExecute(ctx *HookContext) error {
	h.logger.Logf("Operation completed: %s%s with results: %v", ctx.OperationName, elapsed(ctx), ctx.Results)
	return nil
}

// OnError logs when an operation fails.
func (h *LoggingHook) OnError(ctx *HookContext) error {
	h.logger.Logf("Operation error: %s, error: %v%s", ctx.OperationName, ctx.Error, elapsed(ctx))
	return nil
}

func elapsed(ctx *HookContext) string {
	d, ok := ctx.Elapsed()
	if !ok {
		return ""
	}
	return fmt.Sprintf(" after %s", d.Round(time.Millisecond))
}
