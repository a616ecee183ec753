package hooks

import (
	"fmt"
	"sort"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// HookManager manages hook registration and execution.
type HookManager struct {
	preHooks   map[string][]PreHook
	postHooks  map[string][]PostHook
	errorHooks map[string][]ErrorHook
	mu         sync.RWMutex
}

// HookManagerInterface defines the interface for hook management.
type HookManagerInterface interface {
	// Hook registration.
	RegisterPreHook(operation string, hook PreHook) error
	RegisterPostHook(operation string, hook PostHook) error
	RegisterErrorHook(operation string, hook ErrorHook) error

	// Hook execution.
	ExecutePreHooks(operation string, ctx *HookContext) error
	ExecutePostHooks(operation string, ctx *HookContext) error
	ExecuteErrorHooks(operation string, ctx *HookContext) error
}

// NewHookManager creates a new HookManager instance.
func NewHookManager() HookManagerInterface {
	return &HookManager{
		preHooks:   make(map[string][]PreHook),
		postHooks:  make(map[string][]PostHook),
		errorHooks: make(map[string][]ErrorHook),
	}
}

// RegisterPreHook registers a pre-hook for a specific operation.
func (hm *HookManager) RegisterPreHook(operation string, hook PreHook) error {
	hm.mu.Lock()
	defer hm.mu.Unlock()

	if hook == nil {
		return ErrNilHook
	}

	hm.preHooks[operation] = append(hm.preHooks[operation], hook)
	sortByPriority(hm.preHooks[operation])
	return nil
}

// RegisterPostHook registers a post-hook for a specific operation.
func (hm *HookManager) RegisterPostHook(operation string, hook PostHook) error {
	hm.mu.Lock()
	defer hm.mu.Unlock()

	if hook == nil {
		return ErrNilHook
	}

	hm.postHooks[operation] = append(hm.postHooks[operation], hook)
	sortByPriority(hm.postHooks[operation])
	return nil
}

// RegisterErrorHook registers an error-hook for a specific operation.
func (hm *HookManager) RegisterErrorHook(operation string, hook ErrorHook) error {
	hm.mu.Lock()
	defer hm.mu.Unlock()

	if hook == nil {
		return ErrNilHook
	}

	hm.errorHooks[operation] = append(hm.errorHooks[operation], hook)
	sortByPriority(hm.errorHooks[operation])
	return nil
}

// ExecutePreHooks executes all pre-hooks for a specific operation.
func (hm *HookManager) ExecutePreHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.preHooks[operation] {
		if err := hook.PreExecute(ctx); err != nil {
			return fmt.Errorf("pre-hook %s failed: %w", hook.Name(), err)
		}
	}

	return nil
}

// ExecutePostHooks executes all post-hooks for a specific operation.
func (hm *HookManager) ExecutePostHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.postHooks[operation] {
		if err := hook.PostExecute(ctx); err != nil {
			return fmt.Errorf("post-hook %s failed: %w", hook.Name(), err)
		}
	}

	return nil
}

// ExecuteErrorHooks executes all error-hooks for a specific operation.
func (hm *HookManager) ExecuteErrorHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.errorHooks[operation] {
		if err := hook.OnError(ctx); err != nil {
			return fmt.Errorf("error-hook %s failed: %w", hook.Name(), err)
		}
	}

	return nil
}

// sortByPriority orders hooks so that lower priorities run first.
// Hooks of equal priority keep their registration order.
func sortByPriority[H Hook](hooks []H) {
	sort.SliceStable(hooks, func(i, j int) bool {
		return hooks[i].Priority() < hooks[j].Priority()
	})
}
