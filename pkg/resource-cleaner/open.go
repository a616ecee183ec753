package rescleaner

import (
	"github.com/lerenn/resource-cleaner/pkg/resource-cleaner/consts"
)

// Open opens a file or folder with an external application.
func (r *realResourceCleaner) Open(params OpenParams) error {
	hookParams := map[string]interface{}{
		"path":       params.Path,
		"openerName": params.OpenerName,
	}

	return r.executeWithHooks(consts.Open, hookParams, func(_ map[string]interface{}) error {
		r.VerbosePrint("Opening %s", params.Path)
		return r.deps.Opener.Open(params.OpenerName, params.Path, true)
	})
}
