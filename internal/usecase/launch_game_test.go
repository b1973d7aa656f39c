package usecase_test

import (
	"context"
	"os/exec"
	"testing"

	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/testutil"
	"github.com/runoshun/launchpad/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type launchGameFixture struct {
	repo     *testutil.MockGameRepository
	catalog  *testutil.MockCatalog
	launcher *testutil.MockLauncher
	fs       *testutil.MockFileSystem
	logger   *testutil.MockLogger
	config   *testutil.MockConfigLoader
}

func newLaunchGameFixture() *launchGameFixture {
	return &launchGameFixture{
		repo: testutil.NewMockGameRepository(),
		catalog: &testutil.MockCatalog{Emulators: domain.EmulatorMap{
			"mgba": {
				Name:     "mGBA",
				Platform: domain.PlatformGBA,
				Linux:    &domain.EmulatorOSConfig{Exe: "/opt/mgba/mgba", Args: []string{"-f", "${ROM}"}},
			},
		}},
		launcher: &testutil.MockLauncher{},
		fs:       testutil.NewMockFileSystem("/opt/mgba/mgba", "/roms/gba/sun.gba"),
		logger:   &testutil.MockLogger{},
		config:   &testutil.MockConfigLoader{},
	}
}

func (f *launchGameFixture) useCase() *usecase.LaunchGame {
	return usecase.NewLaunchGame(f.repo, f.catalog, f.launcher, f.fs, f.logger, f.config, domain.OSLinux)
}

func TestLaunchGame_Execute_ROM(t *testing.T) {
	t.Run("launches with game emulator", func(t *testing.T) {
		// Setup
		f := newLaunchGameFixture()
		f.repo.Games = []*domain.Game{{ID: "g1", Title: "Sun", Platform: domain.PlatformGBA, ROMPath: "/roms/gba/sun.gba", EmulatorID: "mgba"}}

		// Execute
		out, err := f.useCase().Execute(context.Background(), usecase.LaunchGameInput{GameID: "g1"})

		// Assert
		require.NoError(t, err)
		want := domain.LaunchSpec{Exe: "/opt/mgba/mgba", Args: []string{"-f", "/roms/gba/sun.gba"}, Cwd: "/opt/mgba"}
		assert.Equal(t, want, out.Spec)
		require.Len(t, f.launcher.Launched, 1)
		assert.Equal(t, want, f.launcher.Launched[0])

		require.Len(t, f.logger.Entries, 1)
		entry := f.logger.Entries[0]
		assert.Equal(t, "INFO", entry.Level)
		assert.Equal(t, "g1", entry.GameID)
		assert.Equal(t, `starting: "/opt/mgba/mgba" "-f" "/roms/gba/sun.gba" (cwd /opt/mgba)`, entry.Msg)
	})

	t.Run("falls back to folder emulator", func(t *testing.T) {
		f := newLaunchGameFixture()
		f.repo.Settings.GameFolders = []domain.GameFolder{
			{ID: "f1", Path: "/roms/ps2", EmulatorID: "pcsx2"},
			{ID: "f2", Path: "/ROMS/GBA", EmulatorID: "mgba"},
		}
		f.repo.Games = []*domain.Game{{ID: "g1", Title: "Sun", Platform: domain.PlatformGBA, ROMPath: "/roms/gba/sun.gba"}}

		_, err := f.useCase().Execute(context.Background(), usecase.LaunchGameInput{GameID: "g1"})

		require.NoError(t, err)
		require.Len(t, f.launcher.Launched, 1)
		assert.Equal(t, "/opt/mgba/mgba", f.launcher.Launched[0].Exe)
	})

	t.Run("ignores folder that only shares a name prefix", func(t *testing.T) {
		f := newLaunchGameFixture()
		f.repo.Settings.GameFolders = []domain.GameFolder{
			{ID: "f1", Path: "/roms/gb", EmulatorID: "other"},
			{ID: "f2", Path: "/roms/gba", EmulatorID: "mgba"},
		}
		f.repo.Games = []*domain.Game{{ID: "g1", Title: "Sun", Platform: domain.PlatformGBA, ROMPath: "/roms/gba/sun.gba"}}

		_, err := f.useCase().Execute(context.Background(), usecase.LaunchGameInput{GameID: "g1"})

		require.NoError(t, err)
		require.Len(t, f.launcher.Launched, 1)
		assert.Equal(t, "/opt/mgba/mgba", f.launcher.Launched[0].Exe)
	})

	t.Run("library emulator overrides catalog", func(t *testing.T) {
		f := newLaunchGameFixture()
		f.repo.Settings.Emulators["mgba"] = domain.EmulatorDef{
			Name:     "mGBA",
			Platform: domain.PlatformGBA,
			Linux:    &domain.EmulatorOSConfig{Exe: "mgba-qt", Args: []string{"${ROM}"}},
		}
		f.repo.Games = []*domain.Game{{ID: "g1", Platform: domain.PlatformGBA, ROMPath: "/roms/gba/sun.gba", EmulatorID: "mgba"}}

		out, err := f.useCase().Execute(context.Background(), usecase.LaunchGameInput{GameID: "g1"})

		require.NoError(t, err)
		assert.Equal(t, "mgba-qt", out.Spec.Exe)
		assert.Equal(t, []string{"/roms/gba/sun.gba"}, out.Spec.Args)
	})

	tests := []struct {
		wantErr error
		setup   func(f *launchGameFixture)
		name    string
	}{
		{
			name:    "no emulator",
			wantErr: domain.ErrNoEmulator,
			setup: func(f *launchGameFixture) {
				f.repo.Games[0].EmulatorID = ""
			},
		},
		{
			name:    "unknown emulator",
			wantErr: domain.ErrEmulatorNotFound,
			setup: func(f *launchGameFixture) {
				f.repo.Games[0].EmulatorID = "nope"
			},
		},
		{
			name:    "no config for OS",
			wantErr: domain.ErrNoEmulatorConfig,
			setup: func(f *launchGameFixture) {
				f.catalog.Emulators["mgba"] = domain.EmulatorDef{Name: "mGBA", Platform: domain.PlatformGBA}
			},
		},
		{
			name:    "emulator executable missing",
			wantErr: domain.ErrEmulatorNotFound,
			setup: func(f *launchGameFixture) {
				delete(f.fs.Paths, "/opt/mgba/mgba")
			},
		},
		{
			name:    "rom missing",
			wantErr: domain.ErrROMNotFound,
			setup: func(f *launchGameFixture) {
				delete(f.fs.Paths, "/roms/gba/sun.gba")
			},
		},
		{
			name:    "game missing",
			wantErr: domain.ErrGameNotFound,
			setup: func(f *launchGameFixture) {
				f.repo.Games = nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLaunchGameFixture()
			f.repo.Games = []*domain.Game{{ID: "g1", Platform: domain.PlatformGBA, ROMPath: "/roms/gba/sun.gba", EmulatorID: "mgba"}}
			tt.setup(f)

			out, err := f.useCase().Execute(context.Background(), usecase.LaunchGameInput{GameID: "g1"})

			assert.Nil(t, out)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.launcher.Launched)
		})
	}

	t.Run("launch failure is logged and returned", func(t *testing.T) {
		f := newLaunchGameFixture()
		f.repo.Games = []*domain.Game{{ID: "g1", Platform: domain.PlatformGBA, ROMPath: "/roms/gba/sun.gba", EmulatorID: "mgba"}}
		f.launcher.Err = domain.NewLaunchError("/opt/mgba/mgba", exec.ErrNotFound)

		_, err := f.useCase().Execute(context.Background(), usecase.LaunchGameInput{GameID: "g1"})

		require.ErrorIs(t, err, domain.ErrLaunchFailed)
		require.Len(t, f.logger.Entries, 2)
		assert.Equal(t, "ERROR", f.logger.Entries[1].Level)
		assert.Contains(t, f.logger.Entries[1].Msg, "/opt/mgba/mgba")
	})
}

func TestLaunchGame_Execute_Steam(t *testing.T) {
	t.Run("uses OS default opener", func(t *testing.T) {
		f := newLaunchGameFixture()
		f.repo.Games = []*domain.Game{{ID: "g1", Title: "Portal", Platform: domain.PlatformSteam, SteamAppID: "400"}}

		out, err := f.useCase().Execute(context.Background(), usecase.LaunchGameInput{GameID: "g1"})

		require.NoError(t, err)
		assert.Equal(t, domain.LaunchSpec{Exe: "xdg-open", Args: []string{"steam://rungameid/400"}}, out.Spec)
	})

	t.Run("uses configured opener", func(t *testing.T) {
		f := newLaunchGameFixture()
		cfg := domain.NewDefaultConfig()
		cfg.Steam.Opener = "steam -silent"
		f.config.Config = cfg
		f.repo.Games = []*domain.Game{{ID: "g1", Platform: domain.PlatformSteam, SteamAppID: "400"}}

		out, err := f.useCase().Execute(context.Background(), usecase.LaunchGameInput{GameID: "g1"})

		require.NoError(t, err)
		assert.Equal(t, domain.LaunchSpec{Exe: "steam", Args: []string{"-silent", "steam://rungameid/400"}}, out.Spec)
	})

	t.Run("missing app id", func(t *testing.T) {
		f := newLaunchGameFixture()
		f.repo.Games = []*domain.Game{{ID: "g1", Platform: domain.PlatformSteam}}

		_, err := f.useCase().Execute(context.Background(), usecase.LaunchGameInput{GameID: "g1"})

		require.ErrorIs(t, err, domain.ErrMissingSteamAppID)
		assert.Empty(t, f.launcher.Launched)
	})
}
