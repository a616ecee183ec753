package rescleaner

import (
	"errors"
	"fmt"

	"github.com/lerenn/resource-cleaner/pkg/config"
	"github.com/lerenn/resource-cleaner/pkg/resource-cleaner/consts"
)

// Init writes the default configuration to the configured path, asking the
// user for another location unless NonInteractive is set.
func (r *realResourceCleaner) Init(opts InitOpts) error {
	params := map[string]interface{}{
		"force":          opts.Force,
		"nonInteractive": opts.NonInteractive,
	}

	return r.executeWithHooks(consts.Init, params, func(results map[string]interface{}) error {
		path, err := r.performInitialization(opts)
		if err != nil {
			return err
		}
		results["configPath"] = path
		return nil
	})
}

// performInitialization performs the actual initialization logic.
func (r *realResourceCleaner) performInitialization(opts InitOpts) (string, error) {
	r.VerbosePrint("Starting initialization")

	path := r.deps.Config.GetConfigPath()
	if !opts.NonInteractive {
		chosen, err := r.deps.Prompt.PromptForPath("Choose the location of the configuration file", path)
		if err != nil {
			return "", fmt.Errorf("failed to get configuration path: %w", err)
		}
		path = chosen
	}

	expanded, err := r.deps.FS.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand configuration path: %w", err)
	}
	r.deps.Config.SetConfigPath(expanded)

	if err := r.deps.Config.WriteDefault(opts.Force); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return "", fmt.Errorf("%w: %s", ErrConfigExists, expanded)
		}
		return "", fmt.Errorf("failed to write configuration: %w", err)
	}

	r.VerbosePrint("Configuration written to %s", expanded)
	return expanded, nil
}
