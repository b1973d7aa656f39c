package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/testutil"
	"github.com/runoshun/launchpad/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	t.Run("returns both config infos and effective config", func(t *testing.T) {
		manager := &testutil.MockConfigManager{
			Global: domain.ConfigInfo{
				Path:    "/home/test/.config/launchpad/config.toml",
				Content: "[log]\nlevel = \"debug\"",
				Exists:  true,
			},
			Override: domain.ConfigInfo{
				Path: "/home/test/.config/launchpad/config.override.toml",
			},
		}
		cfg := domain.NewDefaultConfig()
		cfg.Log.Level = "debug"
		loader := &testutil.MockConfigLoader{Config: cfg}

		uc := usecase.NewShowConfig(manager, loader)
		out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		require.NoError(t, err)
		assert.True(t, out.GlobalConfig.Exists)
		assert.Equal(t, "[log]\nlevel = \"debug\"", out.GlobalConfig.Content)
		assert.False(t, out.OverrideConfig.Exists)
		assert.Equal(t, "/home/test/.config/launchpad/config.override.toml", out.OverrideConfig.Path)
		assert.Equal(t, "debug", out.EffectiveConfig.Log.Level)
	})

	t.Run("returns loader error", func(t *testing.T) {
		loader := &testutil.MockConfigLoader{Err: errors.New("bad toml")}

		_, err := usecase.NewShowConfig(&testutil.MockConfigManager{}, loader).Execute(context.Background(), usecase.ShowConfigInput{})

		assert.EqualError(t, err, "load config: bad toml")
	})
}
