package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/launchpad/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/launchpad)
}

// NewManager creates a new Manager using the default global config directory.
func NewManager() *Manager {
	return &Manager{globalConfDir: DefaultGlobalConfigDir()}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(globalConfDir string) *Manager {
	return &Manager{globalConfDir: globalConfDir}
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.info(domain.ConfigFileName)
}

// GetOverrideConfigInfo returns information about the override config file.
func (m *Manager) GetOverrideConfigInfo() domain.ConfigInfo {
	return m.info(domain.ConfigOverrideFileName)
}

func (m *Manager) info(name string) domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	path := filepath.Join(m.globalConfDir, name)
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{Path: path}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitGlobalConfig writes the config template to the global config file.
// An existing file is only replaced when force is set.
func (m *Manager) InitGlobalConfig(force bool) error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)

	if _, err := os.Stat(path); err == nil && !force {
		return domain.ErrConfigExists
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(domain.ConfigTemplate()), 0o600)
}
