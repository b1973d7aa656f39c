package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/testutil"
	"github.com/runoshun/launchpad/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogWithPCSX2() *testutil.MockCatalog {
	return &testutil.MockCatalog{Emulators: domain.EmulatorMap{
		"pcsx2": {
			Name:     "PCSX2",
			Platform: domain.PlatformPS2,
			Win:      &domain.EmulatorOSConfig{Exe: `C:\PCSX2\pcsx2-qt.exe`, Args: []string{"${ROM}"}},
			Linux:    &domain.EmulatorOSConfig{Exe: "pcsx2-qt", Args: []string{"${ROM}"}},
		},
	}}
}

func TestUpsertEmulator_Execute(t *testing.T) {
	t.Run("creates new emulator for current OS", func(t *testing.T) {
		// Setup
		repo := testutil.NewMockGameRepository()
		uc := usecase.NewUpsertEmulator(repo, catalogWithPCSX2(), &testutil.SequentialIDs{Prefix: "e"}, domain.OSLinux)
		args := []string{"-f", "${ROM}"}

		// Execute
		out, err := uc.Execute(context.Background(), usecase.UpsertEmulatorInput{
			Name:     "mGBA",
			Platform: domain.PlatformGBA,
			Exe:      `"/usr/bin/mgba"`,
			Args:     args,
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "e1", out.ID)
		want := domain.EmulatorDef{
			Name:     "mGBA",
			Platform: domain.PlatformGBA,
			Linux:    &domain.EmulatorOSConfig{Exe: "/usr/bin/mgba", Args: []string{"-f", "${ROM}"}},
		}
		assert.Equal(t, want, out.Emulator)
		assert.Equal(t, want, repo.Settings.Emulators["e1"])

		args[0] = "changed"
		assert.Equal(t, "-f", repo.Settings.Emulators["e1"].Linux.Args[0])
	})

	t.Run("updating catalog emulator keeps other OSes", func(t *testing.T) {
		repo := testutil.NewMockGameRepository()
		uc := usecase.NewUpsertEmulator(repo, catalogWithPCSX2(), &testutil.SequentialIDs{}, domain.OSLinux)

		out, err := uc.Execute(context.Background(), usecase.UpsertEmulatorInput{
			ID:  "pcsx2",
			Exe: "/opt/pcsx2/pcsx2-qt",
			OS:  domain.OSLinux,
		})

		require.NoError(t, err)
		saved := repo.Settings.Emulators["pcsx2"]
		assert.Equal(t, out.Emulator, saved)
		assert.Equal(t, "PCSX2", saved.Name)
		assert.Equal(t, domain.PlatformPS2, saved.Platform)
		assert.Equal(t, "/opt/pcsx2/pcsx2-qt", saved.Linux.Exe)
		assert.Empty(t, saved.Linux.Args)
		require.NotNil(t, saved.Win)
		assert.Equal(t, `C:\PCSX2\pcsx2-qt.exe`, saved.Win.Exe)
	})

	t.Run("configures another OS", func(t *testing.T) {
		repo := testutil.NewMockGameRepository()
		uc := usecase.NewUpsertEmulator(repo, catalogWithPCSX2(), &testutil.SequentialIDs{}, domain.OSLinux)

		_, err := uc.Execute(context.Background(), usecase.UpsertEmulatorInput{
			ID:  "pcsx2",
			Exe: "/Applications/PCSX2.app/Contents/MacOS/PCSX2",
			OS:  domain.OSMac,
		})

		require.NoError(t, err)
		saved := repo.Settings.Emulators["pcsx2"]
		require.NotNil(t, saved.Mac)
		assert.Equal(t, "pcsx2-qt", saved.Linux.Exe)
	})

	tests := []struct {
		wantErr error
		name    string
		in      usecase.UpsertEmulatorInput
	}{
		{name: "empty exe", in: usecase.UpsertEmulatorInput{Platform: domain.PlatformGBA}, wantErr: domain.ErrEmptyExecutable},
		{name: "bad os", in: usecase.UpsertEmulatorInput{Exe: "x", Platform: domain.PlatformGBA, OS: "beos"}, wantErr: domain.ErrInvalidOSKey},
		{name: "bad platform", in: usecase.UpsertEmulatorInput{Exe: "x", Platform: "n64"}, wantErr: domain.ErrInvalidPlatform},
		{name: "new emulator without platform", in: usecase.UpsertEmulatorInput{Exe: "x"}, wantErr: domain.ErrInvalidPlatform},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testutil.NewMockGameRepository()
			uc := usecase.NewUpsertEmulator(repo, catalogWithPCSX2(), &testutil.SequentialIDs{}, domain.OSLinux)

			_, err := uc.Execute(context.Background(), tt.in)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.Settings.Emulators)
		})
	}
}

func TestListEmulators_Execute(t *testing.T) {
	repo := testutil.NewMockGameRepository()
	repo.Settings.Emulators["mgba"] = domain.EmulatorDef{Name: "mGBA", Platform: domain.PlatformGBA}
	repo.Settings.Emulators["pcsx2"] = domain.EmulatorDef{Name: "PCSX2 nightly", Platform: domain.PlatformPS2}
	uc := usecase.NewListEmulators(repo, catalogWithPCSX2())

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, out.Emulators, 2)
	assert.Equal(t, "mgba", out.Emulators[0].ID)
	assert.Equal(t, "pcsx2", out.Emulators[1].ID)
	assert.Equal(t, "PCSX2 nightly", out.Emulators[1].Emulator.Name)
}
