package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lerenn/resource-cleaner/configs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	WriteDefault(force bool) error
	CreateConfigDirectory() error
	GetConfigPath() string
	SetConfigPath(configPath string)
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
// A path ending in .toml is read and written as TOML, anything else as YAML.
func NewManager(configPath string) Manager {
	return &realManager{
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
// Keys absent from the file keep their default values.
func (c *realManager) GetConfig() (Config, error) {
	// Check if config file exists
	if _, err := os.Stat(c.configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	// Read config file
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if isTOML(c.configPath) {
		if _, err := toml.Decode(string(data), &config); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
		}
	} else if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration from the embedded config path,
// falling back to default if the file does not exist. A file that exists but
// cannot be parsed or validated is still an error.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}

	if errors.Is(err, ErrConfigNotInitialized) {
		return c.DefaultConfig(), nil
	}

	return Config{}, err
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Create config directory if it doesn't exist
	if err := c.CreateConfigDirectory(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

func (c *realManager) marshal(config Config) ([]byte, error) {
	if !isTOML(c.configPath) {
		return yaml.Marshal(config)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDefault writes the default configuration to the embedded config path.
// YAML files receive the embedded default file as is, comments included.
func (c *realManager) WriteDefault(force bool) error {
	if _, err := os.Stat(c.configPath); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, c.configPath)
	}

	if isTOML(c.configPath) {
		return c.SaveConfig(c.DefaultConfig())
	}

	if err := c.CreateConfigDirectory(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(c.configPath, configs.DefaultConfigYAML, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// CreateConfigDirectory creates the configuration directory structure.
func (c *realManager) CreateConfigDirectory() error {
	configDir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// SetConfigPath updates the embedded config path.
func (c *realManager) SetConfigPath(configPath string) {
	c.configPath = configPath
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	return Default()
}

// DefaultConfigPath returns ~/.rc/config.yaml, or a path relative to the
// current directory when the home directory cannot be determined.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory cannot be determined
		homeDir = "."
	}

	return filepath.Join(homeDir, ".rc", "config.yaml")
}
