// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/infra/catalog"
	"github.com/runoshun/launchpad/internal/infra/config"
	"github.com/runoshun/launchpad/internal/infra/idgen"
	"github.com/runoshun/launchpad/internal/infra/jsonstore"
	"github.com/runoshun/launchpad/internal/infra/logging"
	"github.com/runoshun/launchpad/internal/infra/process"
	"github.com/runoshun/launchpad/internal/infra/scanner"
	"github.com/runoshun/launchpad/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	ConfigDir   string // Directory holding config.toml and config.override.toml
	DataDir     string // Directory holding the library and logs
	LibraryPath string // Path to library.json; overrides [library] path when set
}

// DefaultConfig returns the paths derived from the XDG environment.
func DefaultConfig() Config {
	return Config{
		ConfigDir: config.DefaultGlobalConfigDir(),
		DataDir:   config.DefaultDataDir(),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Games         domain.GameRepository
	Catalog       domain.EmulatorCatalog
	Scanner       domain.ROMScanner
	FS            domain.FileSystem
	IDs           domain.IDGenerator
	Launcher      domain.ProcessLauncher
	Checker       domain.ProcessChecker
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config
	closer    interface{ Close() error }

	// Configuration
	Config Config
	OS     domain.OSKey
}

// New creates a new Container for the given paths.
func New(cfg Config) *Container {
	configLoader := config.NewLoaderWithGlobalDir(cfg.ConfigDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		// Broken config files fall back to defaults so "config init --force" still works.
		appConfig = domain.NewDefaultConfig()
		appConfig.Warnings = append(appConfig.Warnings, err.Error())
	}

	if cfg.LibraryPath == "" {
		cfg.LibraryPath = appConfig.ResolveLibraryPath(cfg.DataDir)
	}

	logger := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		Games:         jsonstore.New(cfg.LibraryPath),
		Catalog:       catalog.New(appConfig.Emulators.Catalog),
		Scanner:       scanner.New(),
		FS:            scanner.FS{},
		IDs:           idgen.UUID{},
		Launcher:      process.NewLauncher(),
		Checker:       process.NewChecker(),
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManagerWithGlobalDir(cfg.ConfigDir),
		AppConfig:     appConfig,
		closer:        logger,
		Config:        cfg,
		OS:            domain.CurrentOSKey(),
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// UseCase factory methods

// LaunchProcessUseCase returns a new LaunchProcess use case.
func (c *Container) LaunchProcessUseCase() *usecase.LaunchProcess {
	return usecase.NewLaunchProcess(c.Launcher)
}

// IsProcessRunningUseCase returns a new IsProcessRunning use case.
func (c *Container) IsProcessRunningUseCase() *usecase.IsProcessRunning {
	return usecase.NewIsProcessRunning(c.Checker)
}

// AddSteamGameUseCase returns a new AddSteamGame use case.
func (c *Container) AddSteamGameUseCase() *usecase.AddSteamGame {
	return usecase.NewAddSteamGame(c.Games, c.IDs)
}

// AddROMGameUseCase returns a new AddROMGame use case.
func (c *Container) AddROMGameUseCase() *usecase.AddROMGame {
	return usecase.NewAddROMGame(c.Games, c.IDs)
}

// ListGamesUseCase returns a new ListGames use case.
func (c *Container) ListGamesUseCase() *usecase.ListGames {
	return usecase.NewListGames(c.Games)
}

// ToggleFavoriteUseCase returns a new ToggleFavorite use case.
func (c *Container) ToggleFavoriteUseCase() *usecase.ToggleFavorite {
	return usecase.NewToggleFavorite(c.Games)
}

// RemoveGameUseCase returns a new RemoveGame use case.
func (c *Container) RemoveGameUseCase() *usecase.RemoveGame {
	return usecase.NewRemoveGame(c.Games)
}

// LaunchGameUseCase returns a new LaunchGame use case.
func (c *Container) LaunchGameUseCase() *usecase.LaunchGame {
	return usecase.NewLaunchGame(c.Games, c.Catalog, c.Launcher, c.FS, c.Logger, c.ConfigLoader, c.OS)
}

// AddGameFolderUseCase returns a new AddGameFolder use case.
func (c *Container) AddGameFolderUseCase() *usecase.AddGameFolder {
	return usecase.NewAddGameFolder(c.Games, c.Catalog, c.FS, c.IDs)
}

// ListGameFoldersUseCase returns a new ListGameFolders use case.
func (c *Container) ListGameFoldersUseCase() *usecase.ListGameFolders {
	return usecase.NewListGameFolders(c.Games)
}

// RemoveGameFolderUseCase returns a new RemoveGameFolder use case.
func (c *Container) RemoveGameFolderUseCase() *usecase.RemoveGameFolder {
	return usecase.NewRemoveGameFolder(c.Games)
}

// ScanFoldersUseCase returns a new ScanFolders use case.
func (c *Container) ScanFoldersUseCase() *usecase.ScanFolders {
	return usecase.NewScanFolders(c.Games, c.Scanner, c.FS, c.IDs, c.Logger)
}

// UpsertEmulatorUseCase returns a new UpsertEmulator use case.
func (c *Container) UpsertEmulatorUseCase() *usecase.UpsertEmulator {
	return usecase.NewUpsertEmulator(c.Games, c.Catalog, c.IDs, c.OS)
}

// ListEmulatorsUseCase returns a new ListEmulators use case.
func (c *Container) ListEmulatorsUseCase() *usecase.ListEmulators {
	return usecase.NewListEmulators(c.Games, c.Catalog)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
