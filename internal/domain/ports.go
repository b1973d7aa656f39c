package domain

// ProcessLauncher starts detached processes.
type ProcessLauncher interface {
	// Launch starts the process described by spec and returns once the
	// operating system has created it. Failures are *LaunchError values.
	Launch(spec LaunchSpec) error
}

// ProcessChecker answers liveness queries for process IDs.
type ProcessChecker interface {
	// IsRunning reports whether pid is running.
	IsRunning(pid int) (bool, error)
}

// GameRepository manages persistence of the game library and settings.
type GameRepository interface {
	// ListGames retrieves games matching the filter, in storage order.
	ListGames(filter GameFilter) ([]*Game, error)

	// GetGame retrieves a game by ID. Returns nil if not found.
	GetGame(id string) (*Game, error)

	// SaveGame creates or updates a game.
	SaveGame(game *Game) error

	// AddGames appends games in a single write.
	AddGames(games []*Game) error

	// DeleteGame removes a game by ID.
	DeleteGame(id string) error

	// PruneGamesByFolder removes every game whose ROM path lies under folderPath
	// and returns how many were removed.
	PruneGamesByFolder(folderPath string) (int, error)

	// GetSettings returns the stored settings.
	GetSettings() (*Settings, error)

	// SaveFolder creates or updates a game folder.
	SaveFolder(folder GameFolder) error

	// DeleteFolder removes a game folder by ID.
	DeleteFolder(id string) error

	// SaveEmulator creates or updates an emulator definition.
	SaveEmulator(id string, def EmulatorDef) error
}

// EmulatorCatalog provides emulator definitions that ship with the launcher
// or come from the user's catalog file.
type EmulatorCatalog interface {
	// Load returns the catalog entries keyed by emulator ID.
	Load() (EmulatorMap, error)
}

// ROMScanner finds ROM files in a directory tree.
type ROMScanner interface {
	// Scan returns the paths under dir that are ROMs for the platform.
	Scan(dir string, platform Platform) ([]string, error)
}

// FileSystem answers questions about paths on disk.
type FileSystem interface {
	// Exists reports whether path exists.
	Exists(path string) bool
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool
}

// IDGenerator produces unique identifiers for library entries.
type IDGenerator interface {
	NewID() string
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration.
	Load() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo
	// GetOverrideConfigInfo returns information about the override config file.
	GetOverrideConfigInfo() ConfigInfo
	// InitGlobalConfig writes the config template to the global config file.
	InitGlobalConfig(force bool) error
}

// Logger writes diagnostic messages.
// gameID scopes a message to a game; empty means global only.
type Logger interface {
	Info(gameID, category, msg string)
	Debug(gameID, category, msg string)
	Warn(gameID, category, msg string)
	Error(gameID, category, msg string)
}

// NopLogger discards all messages.
type NopLogger struct{}

// Info discards the message.
func (NopLogger) Info(string, string, string) {}

// Debug discards the message.
func (NopLogger) Debug(string, string, string) {}

// Warn discards the message.
func (NopLogger) Warn(string, string, string) {}

// Error discards the message.
func (NopLogger) Error(string, string, string) {}
