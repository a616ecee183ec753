// Package dependencies provides a centralized dependency container for the resource cleaner.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/lerenn/resource-cleaner/pkg/config"
	"github.com/lerenn/resource-cleaner/pkg/fs"
	"github.com/lerenn/resource-cleaner/pkg/hooks"
	"github.com/lerenn/resource-cleaner/pkg/logger"
	"github.com/lerenn/resource-cleaner/pkg/opener"
	"github.com/lerenn/resource-cleaner/pkg/prompt"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing          = errors.New("fs dependency is required but not set")
	ErrConfigMissing      = errors.New("config dependency is required but not set")
	ErrLoggerMissing      = errors.New("logger dependency is required but not set")
	ErrPromptMissing      = errors.New("prompt dependency is required but not set")
	ErrHookManagerMissing = errors.New("hook manager dependency is required but not set")
	ErrOpenerMissing      = errors.New("opener dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS          fs.FS
	Config      config.Manager
	Logger      logger.Logger
	Prompt      prompt.Prompter
	HookManager hooks.HookManagerInterface
	Opener      opener.ManagerInterface
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	fsys := fs.NewFS()
	log := logger.NewNoopLogger()

	return &Dependencies{
		FS:          fsys,
		Logger:      log,
		Prompt:      prompt.NewPrompt(),
		HookManager: hooks.NewHookManager(),
		Opener:      opener.NewManager(fsys, log),
		// Note: Config is intentionally left nil as it requires a config path
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.HookManagerInterface) *Dependencies {
	d.HookManager = hm
	return d
}

// WithOpener sets the opener manager and returns the instance for chaining.
func (d *Dependencies) WithOpener(o opener.ManagerInterface) *Dependencies {
	d.Opener = o
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.HookManager, ErrHookManagerMissing},
		{d.Opener, ErrOpenerMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
