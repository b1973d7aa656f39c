package jsonstore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/runoshun/launchpad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "data", "library.json"))
}

func TestStore_EmptyLibrary(t *testing.T) {
	store := newTestStore(t)

	games, err := store.ListGames(domain.GameFilter{})
	require.NoError(t, err)
	assert.Empty(t, games)

	settings, err := store.GetSettings()
	require.NoError(t, err)
	assert.Empty(t, settings.GameFolders)
	assert.NotNil(t, settings.Emulators)

	game, err := store.GetGame("missing")
	require.NoError(t, err)
	assert.Nil(t, game)

	_, err = os.Stat(store.Path())
	assert.ErrorIs(t, err, os.ErrNotExist, "reads must not create the file")
}

func TestStore_SaveAndGetGame(t *testing.T) {
	store := newTestStore(t)
	game := &domain.Game{
		ID:         "g1",
		Title:      "Final Fantasy X",
		Platform:   domain.PlatformPS2,
		ROMPath:    "/roms/ps2/ffx.iso",
		EmulatorID: "pcsx2",
	}

	require.NoError(t, store.SaveGame(game))

	got, err := store.GetGame("g1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *game, *got)

	// Update in place keeps order and count
	game.Favorite = true
	require.NoError(t, store.SaveGame(game))
	games, err := store.ListGames(domain.GameFilter{})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.True(t, games[0].Favorite)
}

func TestStore_ListGames_Filter(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddGames([]*domain.Game{
		{ID: "1", Title: "A", Platform: domain.PlatformPS2},
		{ID: "2", Title: "B", Platform: domain.PlatformGBA, Favorite: true},
		{ID: "3", Title: "C", Platform: domain.PlatformSteam, SteamAppID: "570"},
	}))

	games, err := store.ListGames(domain.GameFilter{Platform: domain.PlatformGBA})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "2", games[0].ID)

	games, err = store.ListGames(domain.GameFilter{FavoritesOnly: true})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "2", games[0].ID)

	games, err = store.ListGames(domain.GameFilter{})
	require.NoError(t, err)
	assert.Len(t, games, 3)
}

func TestStore_DeleteGame(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveGame(&domain.Game{ID: "1", Title: "A"}))

	require.NoError(t, store.DeleteGame("1"))
	assert.ErrorIs(t, store.DeleteGame("1"), domain.ErrGameNotFound)
}

func TestStore_PruneGamesByFolder(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddGames([]*domain.Game{
		{ID: "1", ROMPath: "/Games/PS2/a.iso"},
		{ID: "2", ROMPath: "/games/ps2/sub/b.iso"},
		{ID: "3", ROMPath: "/games/gba/c.gba"},
		{ID: "4", Platform: domain.PlatformSteam, SteamAppID: "1"},
	}))

	removed, err := store.PruneGamesByFolder("/games/PS2")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	games, err := store.ListGames(domain.GameFilter{})
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "3", games[0].ID)
	assert.Equal(t, "4", games[1].ID)
}

func TestStore_PruneGamesByFolder_KeepsSiblingFolder(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddGames([]*domain.Game{
		{ID: "1", ROMPath: "/roms/ps2/a.iso"},
		{ID: "2", ROMPath: "/roms/ps2-jp/b.iso"},
	}))

	removed, err := store.PruneGamesByFolder("/roms/ps2")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	games, err := store.ListGames(domain.GameFilter{})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "2", games[0].ID)
}

func TestStore_Folders(t *testing.T) {
	store := newTestStore(t)
	folder := domain.GameFolder{ID: "f1", Name: "PS2", Platform: domain.PlatformPS2, Path: "/roms/ps2", EmulatorID: "pcsx2"}

	require.NoError(t, store.SaveFolder(folder))
	folder.Name = "PlayStation 2"
	require.NoError(t, store.SaveFolder(folder))

	settings, err := store.GetSettings()
	require.NoError(t, err)
	require.Len(t, settings.GameFolders, 1)
	assert.Equal(t, "PlayStation 2", settings.GameFolders[0].Name)

	require.NoError(t, store.DeleteFolder("f1"))
	assert.ErrorIs(t, store.DeleteFolder("f1"), domain.ErrFolderNotFound)
}

func TestStore_SaveEmulator(t *testing.T) {
	store := newTestStore(t)
	def := domain.EmulatorDef{Name: "PCSX2", Platform: domain.PlatformPS2}.
		WithOS(domain.OSLinux, domain.EmulatorOSConfig{Exe: "/usr/bin/pcsx2", Args: []string{"${ROM}"}})

	require.NoError(t, store.SaveEmulator("pcsx2", def))

	settings, err := store.GetSettings()
	require.NoError(t, err)
	require.Contains(t, settings.Emulators, "pcsx2")
	assert.Equal(t, "/usr/bin/pcsx2", settings.Emulators["pcsx2"].Linux.Exe)
	assert.Nil(t, settings.Emulators["pcsx2"].Win)
}

func TestStore_CorruptFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o750))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o600))

	_, err := store.ListGames(domain.GameFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse library file")
}

func TestStore_ConcurrentWrites(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.SaveGame(&domain.Game{ID: string(rune('a' + i)), Title: "t"}))
		}(i)
	}
	wg.Wait()

	games, err := store.ListGames(domain.GameFilter{})
	require.NoError(t, err)
	assert.Len(t, games, 20)
}
