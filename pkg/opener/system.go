package opener

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/lerenn/resource-cleaner/pkg/fs"
)

// SystemName is the name identifier for the platform's default file handler.
const SystemName = "system"

// System opens paths with the application the desktop associates with them.
type System struct {
	fs   fs.FS
	goos string
}

// NewSystem creates a System opener for the running platform.
func NewSystem(fs fs.FS) *System {
	return &System{fs: fs, goos: runtime.GOOS}
}

// Name returns the name of the opener.
func (s *System) Name() string {
	return SystemName
}

// command returns the executable and its leading arguments for the platform.
func (s *System) command() (string, []string) {
	switch s.goos {
	case "windows":
		// The empty argument is the window title expected by start.
		return "cmd", []string{"/c", "start", ""}
	case "darwin":
		return "open", nil
	default:
		return "xdg-open", nil
	}
}

// IsInstalled checks if the platform handler command is available.
func (s *System) IsInstalled() bool {
	name, _ := s.command()
	_, err := s.fs.Which(name)
	return err == nil
}

// Open starts the platform handler on the absolute form of path.
func (s *System) Open(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	name, args := s.command()
	args = append(args, absPath)

	if err := s.fs.ExecuteCommand(name, args...); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOpenerExecutionFailed, name, err)
	}
	return nil
}
