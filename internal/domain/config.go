package domain

import (
	_ "embed"
	"path/filepath"
)

//go:embed config_template.toml
var configTemplateContent string

// Config file names and directories.
const (
	AppDirName             = "launchpad"            // Directory name under XDG config/data homes
	ConfigFileName         = "config.toml"          // Config file name
	ConfigOverrideFileName = "config.override.toml" // Override config file name
	LibraryFileName        = "library.json"         // Game library file name
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings  []string        `toml:"-"`
	Log       LogConfig       `toml:"log"`
	Library   LibraryConfig   `toml:"library"`
	Emulators EmulatorsConfig `toml:"emulators"`
	Steam     SteamConfig     `toml:"steam"`
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error (default: info)
}

// LibraryConfig holds settings from the [library] section.
type LibraryConfig struct {
	Path string `toml:"path,omitempty"` // Path to library.json (default: <data dir>/library.json)
}

// EmulatorsConfig holds settings from the [emulators] section.
type EmulatorsConfig struct {
	Catalog string `toml:"catalog,omitempty"` // User YAML catalog merged over the built-in one
}

// SteamConfig holds settings from the [steam] section.
type SteamConfig struct {
	Opener string `toml:"opener,omitempty"` // Command that opens steam:// URLs (default depends on OS)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// SteamOpener returns the configured opener, or the OS default.
func (c *Config) SteamOpener(os OSKey) []string {
	if opener := ParseOpener(c.Steam.Opener); len(opener) > 0 {
		return opener
	}
	return DefaultSteamOpener(os)
}

// ResolveLibraryPath returns the library file path, defaulting into dataDir.
func (c *Config) ResolveLibraryPath(dataDir string) string {
	if c.Library.Path != "" {
		return c.Library.Path
	}
	return LibraryPath(dataDir)
}

// ConfigTemplate returns the commented template written by "config init".
func ConfigTemplate() string {
	return configTemplateContent
}

// ConfigInfo holds information about a config file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// GlobalConfigDir returns the config directory under configHome
// (XDG_CONFIG_HOME or ~/.config, resolved by the caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// DataDir returns the data directory under dataHome
// (XDG_DATA_HOME or ~/.local/share, resolved by the caller).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// LibraryPath returns the default library file path in dataDir.
func LibraryPath(dataDir string) string {
	return filepath.Join(dataDir, LibraryFileName)
}

// LogsDir returns the directory holding log files.
func LogsDir(dataDir string) string {
	return filepath.Join(dataDir, "logs")
}

// GlobalLogPath returns the path of the main log file.
func GlobalLogPath(dataDir string) string {
	return filepath.Join(LogsDir(dataDir), "launchpad.log")
}

// GameLogPath returns the path of a game's log file.
func GameLogPath(dataDir, gameID string) string {
	return filepath.Join(LogsDir(dataDir), "game-"+gameID+".log")
}
