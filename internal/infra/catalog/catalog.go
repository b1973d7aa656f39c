// Package catalog loads emulator definitions from YAML.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/launchpad/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed emulators.yaml
var builtinYAML []byte

// Ensure Catalog implements domain.EmulatorCatalog.
var _ domain.EmulatorCatalog = (*Catalog)(nil)

// Catalog merges the built-in emulator definitions with an optional user file.
type Catalog struct {
	userPath string // Path to the user's catalog; empty or missing is ignored
}

// New creates a Catalog. userPath may be empty.
func New(userPath string) *Catalog {
	return &Catalog{userPath: userPath}
}

// Load returns the built-in definitions with the user's entries applied on top.
func (c *Catalog) Load() (domain.EmulatorMap, error) {
	builtin, err := parseBuiltin()
	if err != nil {
		return nil, err
	}
	if c.userPath == "" {
		return builtin, nil
	}

	data, err := os.ReadFile(c.userPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return builtin, nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	user, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", c.userPath, err)
	}
	return builtin.Merge(user), nil
}

// Parse decodes a YAML catalog keyed by emulator ID.
// An entry without a platform gets one inferred from its ID.
func Parse(data []byte) (domain.EmulatorMap, error) {
	var raw map[string]domain.EmulatorDef
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	out := make(domain.EmulatorMap, len(raw))
	for id, def := range raw {
		if def.Platform == "" {
			def.Platform = inferPlatform(id)
		}
		if !def.Platform.IsValid() {
			return nil, fmt.Errorf("emulator %q: %w: %q", id, domain.ErrInvalidPlatform, def.Platform)
		}
		if def.Name == "" {
			def.Name = id
		}
		out[id] = def
	}
	return out, nil
}

// inferPlatform guesses the platform of an emulator from its ID.
func inferPlatform(id string) domain.Platform {
	lower := strings.ToLower(id)
	switch {
	case strings.Contains(lower, "pcsx2"):
		return domain.PlatformPS2
	case strings.Contains(lower, "rpcs3"):
		return domain.PlatformPS3
	default:
		return domain.PlatformCustom
	}
}

// parseBuiltin decodes the definitions that ship with the launcher.
func parseBuiltin() (domain.EmulatorMap, error) {
	m, err := Parse(builtinYAML)
	if err != nil {
		return nil, fmt.Errorf("parse builtin catalog: %w", err)
	}
	return m, nil
}
