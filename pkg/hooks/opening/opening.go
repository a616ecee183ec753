// Package opening opens the rewritten header once an apply succeeded.
package opening

import (
	"github.com/lerenn/resource-cleaner/pkg/hooks"
	"github.com/lerenn/resource-cleaner/pkg/opener"
	"github.com/lerenn/resource-cleaner/pkg/resource-cleaner/consts"
)

// HeaderOpeningHook opens the header named in the operation results as a post-hook.
type HeaderOpeningHook struct {
	opener  opener.ManagerInterface
	verbose bool
}

// NewHeaderOpeningHook creates a new HeaderOpeningHook instance.
func NewHeaderOpeningHook(o opener.ManagerInterface, verbose bool) *HeaderOpeningHook {
	return &HeaderOpeningHook{opener: o, verbose: verbose}
}

// RegisterForOperations registers this hook for the operations that rewrite the header.
func (h *HeaderOpeningHook) RegisterForOperations(registerHook func(operation string, hook hooks.PostHook) error) error {
	return registerHook(consts.Apply, h)
}

// Name returns the hook name.
func (h *HeaderOpeningHook) Name() string {
	return "header-opening"
}

// Priority returns the hook priority (lower numbers execute first).
func (h *HeaderOpeningHook) Priority() int {
	return 150
}

// Execute is a no-op for HeaderOpeningHook as it implements specific methods.
func (h *HeaderOpeningHook) Execute(_ *hooks.HookContext) error {
	return nil
}

// PostExecute opens the header when the caller asked for it.
func (h *HeaderOpeningHook) PostExecute(ctx *hooks.HookContext) error {
	if ctx.Error != nil {
		return nil //nolint:nilerr
	}

	if open, _ := ctx.Parameters["openHeader"].(bool); !open {
		return nil
	}

	headerPath, _ := ctx.Results["headerPath"].(string)
	if headerPath == "" {
		return ErrHeaderPathMissing
	}

	openerName, _ := ctx.Parameters["openerName"].(string)
	if err := h.opener.Open(openerName, headerPath, h.verbose); err != nil {
		return err
	}

	ctx.Results["opened"] = true
	return nil
}
