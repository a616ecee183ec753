//go:build e2e

package test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/resource-cleaner/pkg/config"
	"github.com/lerenn/resource-cleaner/pkg/dependencies"
	"github.com/lerenn/resource-cleaner/pkg/fs"
	defaulthooks "github.com/lerenn/resource-cleaner/pkg/hooks/defaults"
	"github.com/lerenn/resource-cleaner/pkg/logger"
	"github.com/lerenn/resource-cleaner/pkg/opener"
	rescleaner "github.com/lerenn/resource-cleaner/pkg/resource-cleaner"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir    string
	ConfigPath string
	ProjectDir string
}

// setupTestEnvironment creates a temporary project and a configuration file
func setupTestEnvironment(t *testing.T) *TestSetup {
	t.Helper()

	tempDir := t.TempDir()
	projectDir := filepath.Join(tempDir, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))

	cfg := config.Default()
	cfg.Scan.Workers = 2

	configPath := filepath.Join(tempDir, "config.yaml")
	configData, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, configData, 0644))

	return &TestSetup{
		TempDir:    tempDir,
		ConfigPath: configPath,
		ProjectDir: projectDir,
	}
}

// writeProject writes files relative to the project directory
func writeProject(t *testing.T, setup *TestSetup, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(setup.ProjectDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// newResourceCleaner wires a ResourceCleaner the way the CLI does
func newResourceCleaner(t *testing.T, setup *TestSetup) rescleaner.ResourceCleaner {
	t.Helper()

	fsys := fs.NewFS()
	log := logger.NewNoopLogger()
	openerManager := opener.NewManager(fsys, log)

	hookManager, err := defaulthooks.NewDefaultHooksManager(openerManager, log, false)
	require.NoError(t, err)

	rc, err := rescleaner.NewResourceCleaner(rescleaner.NewResourceCleanerParams{
		Dependencies: dependencies.New().
			WithFS(fsys).
			WithLogger(log).
			WithConfig(config.NewManager(setup.ConfigPath)).
			WithOpener(openerManager).
			WithHookManager(hookManager),
	})
	require.NoError(t, err)

	return rc
}

// listBackups returns the backups of the header at path
func listBackups(t *testing.T, path string) []string {
	t.Helper()

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)

	var backups []string
	prefix := filepath.Base(path) + ".bak_"
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), prefix) {
			backups = append(backups, filepath.Join(filepath.Dir(path), e.Name()))
		}
	}
	return backups
}

// readFile reads a file and fails the test on error
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
