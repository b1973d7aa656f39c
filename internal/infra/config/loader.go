// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/launchpad/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/launchpad)
}

// NewLoader creates a new Loader using the default global config directory.
func NewLoader() *Loader {
	return &Loader{globalConfDir: DefaultGlobalConfigDir()}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(globalConfDir string) *Loader {
	return &Loader{globalConfDir: globalConfDir}
}

// Load returns the merged configuration.
// Merge order: default <- config.toml <- config.override.toml.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	if l.globalConfDir == "" {
		return base, nil
	}

	for _, name := range []string{domain.ConfigFileName, domain.ConfigOverrideFileName} {
		cfg, err := l.loadFile(filepath.Join(l.globalConfDir, name))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		base = mergeConfigs(base, cfg)
	}

	base.Library.Path = expandHome(base.Library.Path)
	base.Emulators.Catalog = expandHome(base.Emulators.Catalog)
	return base, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	// stringKeys reads string values for known keys of a section and warns about the rest.
	stringKeys := func(section string, value any, fields map[string]*string) {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("section [%s] must be a table", section))
			return
		}
		for k, v := range m {
			dst, known := fields[k]
			if !known {
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
				continue
			}
			s, ok := v.(string)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("key %s in [%s] must be a string", k, section))
				continue
			}
			*dst = s
		}
	}

	for section, value := range raw {
		switch section {
		case "log":
			stringKeys(section, value, map[string]*string{"level": &res.Log.Level})
		case "library":
			stringKeys(section, value, map[string]*string{"path": &res.Library.Path})
		case "emulators":
			stringKeys(section, value, map[string]*string{"catalog": &res.Emulators.Catalog})
		case "steam":
			stringKeys(section, value, map[string]*string{"opener": &res.Steam.Opener})
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)

	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Library.Path != "" {
		result.Library.Path = override.Library.Path
	}
	if override.Emulators.Catalog != "" {
		result.Emulators.Catalog = override.Emulators.Catalog
	}
	if override.Steam.Opener != "" {
		result.Steam.Opener = override.Steam.Opener
	}

	return &result
}
