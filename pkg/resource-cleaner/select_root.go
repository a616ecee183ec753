package rescleaner

import (
	"errors"
	"fmt"

	"github.com/lerenn/resource-cleaner/pkg/prompt"
	"github.com/lerenn/resource-cleaner/pkg/resource-cleaner/consts"
)

// SelectRoot lets the user pick the project root interactively, starting from start.
func (r *realResourceCleaner) SelectRoot(start string) (string, error) {
	var selected string
	err := r.executeWithHooks(consts.SelectRoot, map[string]interface{}{"start": start},
		func(results map[string]interface{}) error {
			path, err := r.deps.Prompt.PromptSelectFolder(start)
			if err != nil {
				if errors.Is(err, prompt.ErrNoSelection) {
					return ErrNoRootSelected
				}
				return fmt.Errorf("failed to select root folder: %w", err)
			}
			selected = path
			results["rootPath"] = path
			return nil
		})
	if err != nil {
		return "", err
	}

	r.VerbosePrint("Selected root %s", selected)
	return selected, nil
}
