package cli

import (
	"github.com/lerenn/resource-cleaner/pkg/dependencies"
	"github.com/lerenn/resource-cleaner/pkg/fs"
	defaulthooks "github.com/lerenn/resource-cleaner/pkg/hooks/defaults"
	"github.com/lerenn/resource-cleaner/pkg/logger"
	"github.com/lerenn/resource-cleaner/pkg/opener"
	rescleaner "github.com/lerenn/resource-cleaner/pkg/resource-cleaner"
)

// NewLogger returns the logger matching the verbosity flags.
func NewLogger() logger.Logger {
	if Verbose && !Quiet {
		return logger.NewDefaultLogger()
	}
	return logger.NewNoopLogger()
}

// NewResourceCleaner creates a ResourceCleaner wired with the CLI configuration.
func NewResourceCleaner() (rescleaner.ResourceCleaner, error) {
	fsys := fs.NewFS()
	log := NewLogger()
	openerManager := opener.NewManager(fsys, log)

	hookManager, err := defaulthooks.NewDefaultHooksManager(openerManager, log, Verbose && !Quiet)
	if err != nil {
		return nil, err
	}

	return rescleaner.NewResourceCleaner(rescleaner.NewResourceCleanerParams{
		Dependencies: dependencies.New().
			WithFS(fsys).
			WithLogger(log).
			WithConfig(NewConfigManager()).
			WithOpener(openerManager).
			WithHookManager(hookManager),
	})
}
