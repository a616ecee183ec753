package opener

import (
	"fmt"

	"github.com/lerenn/resource-cleaner/pkg/fs"
	"github.com/lerenn/resource-cleaner/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=opener.go -destination=mocks/opener.gen.go -package=mocks

// DefaultOpener is the opener used when no name is given.
const DefaultOpener = SystemName

// Opener defines the methods that all opener implementations must provide.
type Opener interface {
	// Name returns the name of the opener
	Name() string

	// IsInstalled checks if the opener is available on the system
	IsInstalled() bool

	// Open hands the path to the external application
	Open(path string) error
}

// ManagerInterface defines the interface for opener management.
type ManagerInterface interface {
	// GetOpener returns the opener implementation for the given name
	GetOpener(name string) (Opener, error)
	// Open opens the path with the named opener
	Open(name, path string, verbose bool) error
}

// Manager manages opener implementations and provides a unified interface.
type Manager struct {
	fs      fs.FS
	openers map[string]Opener
	logger  logger.Logger
}

// NewManager creates a new opener manager with registered opener implementations.
func NewManager(fs fs.FS, logger logger.Logger) *Manager {
	m := &Manager{
		fs:      fs,
		openers: make(map[string]Opener),
		logger:  logger,
	}

	m.register(NewSystem(fs))
	m.register(NewDummy())

	return m
}

func (m *Manager) register(o Opener) {
	m.openers[o.Name()] = o
}

// GetOpener returns the opener implementation for the given name.
func (m *Manager) GetOpener(name string) (Opener, error) {
	o, exists := m.openers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOpener, name)
	}
	return o, nil
}

// Open opens the path with the named opener.
func (m *Manager) Open(name, path string, verbose bool) error {
	if name == "" {
		name = DefaultOpener
	}

	o, err := m.GetOpener(name)
	if err != nil {
		return err
	}

	exists, err := m.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	if !o.IsInstalled() {
		return fmt.Errorf("%w: %s", ErrOpenerNotInstalled, name)
	}

	if verbose {
		m.logger.Logf("Opening %s with %s", path, name)
	}

	if err := o.Open(path); err != nil {
		m.logger.Logf("Failed to open %s: %v", path, err)
		return err
	}

	if verbose {
		m.logger.Logf("Successfully opened %s with %s", path, name)
	}

	return nil
}
