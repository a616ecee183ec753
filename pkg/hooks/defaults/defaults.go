// Package defaulthooks provides default hook implementations for the resource cleaner.
package defaulthooks

import (
	"github.com/lerenn/resource-cleaner/pkg/hooks"
	"github.com/lerenn/resource-cleaner/pkg/hooks/opening"
	"github.com/lerenn/resource-cleaner/pkg/logger"
	"github.com/lerenn/resource-cleaner/pkg/opener"
	"github.com/lerenn/resource-cleaner/pkg/resource-cleaner/consts"
)

// NewDefaultHooksManager creates a hooks manager with the header opening hook,
// and operation logging when verbose.
func NewDefaultHooksManager(o opener.ManagerInterface, log logger.Logger, verbose bool) (hooks.HookManagerInterface, error) {
	hm := hooks.NewHookManager()

	if err := opening.NewHeaderOpeningHook(o, verbose).RegisterForOperations(hm.RegisterPostHook); err != nil {
		return nil, err
	}

	if verbose {
		loggingHook := hooks.NewLoggingHook(log)
		if err := loggingHook.RegisterForOperations(hm, consts.Analyze, consts.Apply, consts.Init, consts.Open); err != nil {
			return nil, err
		}
	}

	return hm, nil
}
