package rescleaner

import (
	"context"
	"fmt"
	"time"

	"github.com/lerenn/resource-cleaner/pkg/config"
	"github.com/lerenn/resource-cleaner/pkg/dependencies"
	"github.com/lerenn/resource-cleaner/pkg/hooks"
	"github.com/lerenn/resource-cleaner/pkg/logger"
)

// ResourceCleaner interface provides resource header analysis and renumbering.
type ResourceCleaner interface {
	// AnalyzeAndRenumber finds the unused symbols of a header and computes
	// the renumbering of the others, rewriting the header when asked to.
	AnalyzeAndRenumber(ctx context.Context, params AnalyzeParams) (*Result, error)
	// SelectRoot lets the user pick the project root interactively.
	SelectRoot(start string) (string, error)
	// Open opens a file or folder with an external application.
	Open(params OpenParams) error
	// Init writes the default configuration.
	Init(opts InitOpts) error
	// SetLogger sets the logger for this instance.
	SetLogger(logger logger.Logger)
}

// NewResourceCleanerParams contains parameters for creating a new ResourceCleaner instance.
type NewResourceCleanerParams struct {
	Dependencies *dependencies.Dependencies
}

type realResourceCleaner struct {
	deps *dependencies.Dependencies
}

// NewResourceCleaner creates a new ResourceCleaner instance.
func NewResourceCleaner(params NewResourceCleanerParams) (ResourceCleaner, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realResourceCleaner{
		deps: deps,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (r *realResourceCleaner) VerbosePrint(msg string, args ...interface{}) {
	if r.deps.Logger != nil {
		r.deps.Logger.Logf(msg, args...)
	}
}

// SetLogger sets the logger for this ResourceCleaner instance.
func (r *realResourceCleaner) SetLogger(logger logger.Logger) {
	r.deps.Logger = logger
}

// getConfig gets the configuration from the ConfigManager with fallback.
func (r *realResourceCleaner) getConfig() (config.Config, error) {
	cfg, err := r.deps.Config.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// executeWithHooks executes an operation with pre and post hooks.
// The operation records what it produced in results.
func (r *realResourceCleaner) executeWithHooks(
	operationName string, params map[string]interface{}, operation func(results map[string]interface{}) error) error {
	ctx := &hooks.HookContext{
		OperationName: operationName,
		Parameters:    params,
		Results:       make(map[string]interface{}),
		Metadata:      map[string]interface{}{hooks.MetadataStartedAt: time.Now()},
	}
	// Execute pre-hooks (if hook manager is available)
	if err := r.executePreHooks(operationName, ctx); err != nil {
		return err
	}
	// Execute operation
	var resultErr error
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operationName, rec)
			}
		}()
		resultErr = operation(ctx.Results)
	}()
	// Update context with results
	ctx.Error = resultErr
	if resultErr == nil {
		ctx.Results["success"] = true
	}
	// Execute post-hooks or error-hooks (if hook manager is available)
	if hookErr := r.executeHooks(operationName, ctx, resultErr); hookErr != nil {
		return hookErr
	}
	return resultErr
}

// executeHooks executes post-hooks or error-hooks based on the operation result.
func (r *realResourceCleaner) executeHooks(operationName string, ctx *hooks.HookContext, resultErr error) error {
	if r.deps.HookManager == nil {
		return nil
	}

	if resultErr != nil {
		return r.deps.HookManager.ExecuteErrorHooks(operationName, ctx)
	}
	return r.deps.HookManager.ExecutePostHooks(operationName, ctx)
}

// executePreHooks executes pre-hooks if hook manager is available.
func (r *realResourceCleaner) executePreHooks(operationName string, ctx *hooks.HookContext) error {
	if r.deps.HookManager == nil {
		return nil
	}
	return r.deps.HookManager.ExecutePreHooks(operationName, ctx)
}
