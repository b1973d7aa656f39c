// Package jsonstore provides a JSON file-based implementation of GameRepository.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/runoshun/launchpad/internal/domain"
)

// storeData represents the JSON file structure.
type storeData struct {
	Settings domain.Settings `json:"settings"`
	Games    []*domain.Game  `json:"games"`
}

// Store implements domain.GameRepository using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// Ensure Store implements GameRepository.
var _ domain.GameRepository = (*Store)(nil)

// New creates a new Store for the given file path.
// The file does not need to exist; a missing file reads as an empty library.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the library file path.
func (s *Store) Path() string {
	return s.path
}

// ListGames retrieves games matching the filter in insertion order.
func (s *Store) ListGames(filter domain.GameFilter) ([]*domain.Game, error) {
	var games []*domain.Game
	err := s.withLock(func(data *storeData) error {
		for _, g := range data.Games {
			if filter.Match(g) {
				games = append(games, g)
			}
		}
		return nil
	})
	return games, err
}

// GetGame retrieves a game by ID.
func (s *Store) GetGame(id string) (*domain.Game, error) {
	var game *domain.Game
	err := s.withLock(func(data *storeData) error {
		if i := indexOfGame(data.Games, id); i >= 0 {
			game = data.Games[i]
		}
		return nil
	})
	return game, err
}

// SaveGame creates or updates a game.
func (s *Store) SaveGame(game *domain.Game) error {
	return s.withLockWrite(func(data *storeData) error {
		if i := indexOfGame(data.Games, game.ID); i >= 0 {
			data.Games[i] = game
			return nil
		}
		data.Games = append(data.Games, game)
		return nil
	})
}

// AddGames appends games in a single write.
func (s *Store) AddGames(games []*domain.Game) error {
	if len(games) == 0 {
		return nil
	}
	return s.withLockWrite(func(data *storeData) error {
		data.Games = append(data.Games, games...)
		return nil
	})
}

// DeleteGame removes a game by ID.
func (s *Store) DeleteGame(id string) error {
	return s.withLockWrite(func(data *storeData) error {
		i := indexOfGame(data.Games, id)
		if i < 0 {
			return domain.ErrGameNotFound
		}
		data.Games = slices.Delete(data.Games, i, i+1)
		return nil
	})
}

// PruneGamesByFolder removes games whose ROM path starts with folderPath, ignoring case.
func (s *Store) PruneGamesByFolder(folderPath string) (int, error) {
	var removed int
	err := s.withLockWrite(func(data *storeData) error {
		before := len(data.Games)
		data.Games = slices.DeleteFunc(data.Games, func(g *domain.Game) bool {
			return g.ROMPath != "" && domain.HasPathPrefixFold(g.ROMPath, folderPath)
		})
		removed = before - len(data.Games)
		return nil
	})
	return removed, err
}

// GetSettings returns the stored settings.
func (s *Store) GetSettings() (*domain.Settings, error) {
	var settings domain.Settings
	err := s.withLock(func(data *storeData) error {
		settings = data.Settings
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveFolder creates or updates a game folder.
func (s *Store) SaveFolder(folder domain.GameFolder) error {
	return s.withLockWrite(func(data *storeData) error {
		for i, f := range data.Settings.GameFolders {
			if f.ID == folder.ID {
				data.Settings.GameFolders[i] = folder
				return nil
			}
		}
		data.Settings.GameFolders = append(data.Settings.GameFolders, folder)
		return nil
	})
}

// DeleteFolder removes a game folder by ID.
func (s *Store) DeleteFolder(id string) error {
	return s.withLockWrite(func(data *storeData) error {
		i := slices.IndexFunc(data.Settings.GameFolders, func(f domain.GameFolder) bool {
			return f.ID == id
		})
		if i < 0 {
			return domain.ErrFolderNotFound
		}
		data.Settings.GameFolders = slices.Delete(data.Settings.GameFolders, i, i+1)
		return nil
	})
}

// SaveEmulator creates or updates an emulator definition.
func (s *Store) SaveEmulator(id string, def domain.EmulatorDef) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Settings.Emulators[id] = def
		return nil
	})
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(false)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(true)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(exclusive bool) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := lockFile(lock, exclusive); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = unlockFile(lock)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	data := &storeData{}

	content, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Nothing saved yet
	case err != nil:
		return nil, fmt.Errorf("read library file: %w", err)
	default:
		if err := json.Unmarshal(content, data); err != nil {
			return nil, fmt.Errorf("parse library file: %w", err)
		}
	}

	// Ensure collections are initialized
	if data.Games == nil {
		data.Games = []*domain.Game{}
	}
	if data.Settings.GameFolders == nil {
		data.Settings.GameFolders = []domain.GameFolder{}
	}
	if data.Settings.Emulators == nil {
		data.Settings.Emulators = make(domain.EmulatorMap)
	}

	return data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal library data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func indexOfGame(games []*domain.Game, id string) int {
	return slices.IndexFunc(games, func(g *domain.Game) bool {
		return g.ID == id
	})
}
