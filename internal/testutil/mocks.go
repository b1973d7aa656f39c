// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"slices"
	"sync"

	"github.com/runoshun/launchpad/internal/domain"
)

// MockLauncher is a test double for domain.ProcessLauncher.
type MockLauncher struct {
	Err      error
	Launched []domain.LaunchSpec
	mu       sync.Mutex
}

// Launch records spec and returns Err.
func (m *MockLauncher) Launch(spec domain.LaunchSpec) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Launched = append(m.Launched, spec)
	return nil
}

// MockChecker is a test double for domain.ProcessChecker.
type MockChecker struct {
	Err     error
	Running bool
}

// IsRunning returns Running and Err.
func (m *MockChecker) IsRunning(int) (bool, error) {
	return m.Running, m.Err
}

// MockGameRepository is a test double for domain.GameRepository.
// Fields are ordered to minimize memory padding.
type MockGameRepository struct {
	Settings domain.Settings
	Games    []*domain.Game
	SaveErr  error
	GetErr   error
}

// NewMockGameRepository creates a new MockGameRepository with initialized settings.
func NewMockGameRepository() *MockGameRepository {
	return &MockGameRepository{
		Settings: domain.Settings{Emulators: make(domain.EmulatorMap)},
	}
}

// ListGames returns games matching the filter.
func (m *MockGameRepository) ListGames(filter domain.GameFilter) ([]*domain.Game, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	var out []*domain.Game
	for _, g := range m.Games {
		if filter.Match(g) {
			out = append(out, g)
		}
	}
	return out, nil
}

// GetGame retrieves a game by ID.
func (m *MockGameRepository) GetGame(id string) (*domain.Game, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, g := range m.Games {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

// SaveGame creates or updates a game.
func (m *MockGameRepository) SaveGame(game *domain.Game) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	for i, g := range m.Games {
		if g.ID == game.ID {
			m.Games[i] = game
			return nil
		}
	}
	m.Games = append(m.Games, game)
	return nil
}

// AddGames appends games.
func (m *MockGameRepository) AddGames(games []*domain.Game) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Games = append(m.Games, games...)
	return nil
}

// DeleteGame removes a game by ID.
func (m *MockGameRepository) DeleteGame(id string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	n := len(m.Games)
	m.Games = slices.DeleteFunc(m.Games, func(g *domain.Game) bool { return g.ID == id })
	if len(m.Games) == n {
		return domain.ErrGameNotFound
	}
	return nil
}

// PruneGamesByFolder removes games under folderPath.
func (m *MockGameRepository) PruneGamesByFolder(folderPath string) (int, error) {
	if m.SaveErr != nil {
		return 0, m.SaveErr
	}
	n := len(m.Games)
	m.Games = slices.DeleteFunc(m.Games, func(g *domain.Game) bool {
		return g.ROMPath != "" && domain.HasPathPrefixFold(g.ROMPath, folderPath)
	})
	return n - len(m.Games), nil
}

// GetSettings returns a copy of the settings.
func (m *MockGameRepository) GetSettings() (*domain.Settings, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	s := m.Settings
	return &s, nil
}

// SaveFolder creates or updates a folder.
func (m *MockGameRepository) SaveFolder(folder domain.GameFolder) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	for i, f := range m.Settings.GameFolders {
		if f.ID == folder.ID {
			m.Settings.GameFolders[i] = folder
			return nil
		}
	}
	m.Settings.GameFolders = append(m.Settings.GameFolders, folder)
	return nil
}

// DeleteFolder removes a folder by ID.
func (m *MockGameRepository) DeleteFolder(id string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	n := len(m.Settings.GameFolders)
	m.Settings.GameFolders = slices.DeleteFunc(m.Settings.GameFolders, func(f domain.GameFolder) bool { return f.ID == id })
	if len(m.Settings.GameFolders) == n {
		return domain.ErrFolderNotFound
	}
	return nil
}

// SaveEmulator creates or updates an emulator definition.
func (m *MockGameRepository) SaveEmulator(id string, def domain.EmulatorDef) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if m.Settings.Emulators == nil {
		m.Settings.Emulators = make(domain.EmulatorMap)
	}
	m.Settings.Emulators[id] = def
	return nil
}

// MockCatalog is a test double for domain.EmulatorCatalog.
type MockCatalog struct {
	Emulators domain.EmulatorMap
	Err       error
}

// Load returns the configured emulators.
func (m *MockCatalog) Load() (domain.EmulatorMap, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Emulators.Merge(nil), nil
}

// MockScanner is a test double for domain.ROMScanner.
type MockScanner struct {
	Files map[string][]string // dir -> files
	Err   error
}

// Scan returns the configured files for dir.
func (m *MockScanner) Scan(dir string, _ domain.Platform) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Files[dir], nil
}

// MockFileSystem is a test double for domain.FileSystem.
type MockFileSystem struct {
	Paths map[string]bool // path -> is directory
}

// NewMockFileSystem creates a MockFileSystem containing the given files.
func NewMockFileSystem(files ...string) *MockFileSystem {
	m := &MockFileSystem{Paths: make(map[string]bool)}
	for _, f := range files {
		m.Paths[f] = false
	}
	return m
}

// AddDir registers a directory.
func (m *MockFileSystem) AddDir(path string) *MockFileSystem {
	m.Paths[path] = true
	return m
}

// Exists reports whether path was registered.
func (m *MockFileSystem) Exists(path string) bool {
	_, ok := m.Paths[path]
	return ok
}

// IsDir reports whether path was registered as a directory.
func (m *MockFileSystem) IsDir(path string) bool {
	return m.Paths[path]
}

// SequentialIDs is a deterministic domain.IDGenerator.
type SequentialIDs struct {
	Prefix string
	n      int
}

// NewID returns Prefix followed by an increasing counter starting at 1.
func (s *SequentialIDs) NewID() string {
	s.n++
	return fmt.Sprintf("%s%d", s.Prefix, s.n)
}

// LogEntry is a message captured by MockLogger.
type LogEntry struct {
	Level    string
	GameID   string
	Category string
	Msg      string
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, gameID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, GameID: gameID, Category: category, Msg: msg})
}

// Info records an info message.
func (m *MockLogger) Info(gameID, category, msg string) { m.add("INFO", gameID, category, msg) }

// Debug records a debug message.
func (m *MockLogger) Debug(gameID, category, msg string) { m.add("DEBUG", gameID, category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(gameID, category, msg string) { m.add("WARN", gameID, category, msg) }

// Error records an error message.
func (m *MockLogger) Error(gameID, category, msg string) { m.add("ERROR", gameID, category, msg) }

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config, or defaults.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	Global   domain.ConfigInfo
	Override domain.ConfigInfo
	InitErr  error
	Forced   bool
	Inited   bool
}

// GetGlobalConfigInfo returns Global.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.Global }

// GetOverrideConfigInfo returns Override.
func (m *MockConfigManager) GetOverrideConfigInfo() domain.ConfigInfo { return m.Override }

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(force bool) error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.Inited = true
	m.Forced = force
	return nil
}
