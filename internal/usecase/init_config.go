package usecase

import (
	"context"

	"github.com/runoshun/launchpad/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Force bool // Overwrite an existing config file
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig writes the configuration file template.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute creates the global configuration file.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	info := uc.configManager.GetGlobalConfigInfo()
	if err := uc.configManager.InitGlobalConfig(in.Force); err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: info.Path}, nil
}
