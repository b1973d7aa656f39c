package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/usecase/shared"
)

// AddGameFolderInput contains the parameters for registering a game folder.
type AddGameFolderInput struct {
	Path       string          // Directory to scan (required)
	Platform   domain.Platform // Platform of the ROMs inside (required)
	EmulatorID string          // Emulator for the ROMs; required for emulated platforms
	Name       string          // Display name; defaults to the directory name
}

// AddGameFolderOutput contains the registered folder.
type AddGameFolderOutput struct {
	Folder domain.GameFolder
}

// AddGameFolder registers a directory to be scanned for ROMs.
type AddGameFolder struct {
	games   domain.GameRepository
	catalog domain.EmulatorCatalog
	fs      domain.FileSystem
	ids     domain.IDGenerator
}

// NewAddGameFolder creates a new AddGameFolder use case.
func NewAddGameFolder(
	games domain.GameRepository,
	catalog domain.EmulatorCatalog,
	fs domain.FileSystem,
	ids domain.IDGenerator,
) *AddGameFolder {
	return &AddGameFolder{games: games, catalog: catalog, fs: fs, ids: ids}
}

// Execute registers the folder.
func (uc *AddGameFolder) Execute(_ context.Context, in AddGameFolderInput) (*AddGameFolderOutput, error) {
	if !in.Platform.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPlatform, in.Platform)
	}
	path := filepath.Clean(domain.Dequote(strings.TrimSpace(in.Path)))
	if !uc.fs.IsDir(path) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotADirectory, path)
	}

	settings, err := uc.games.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	for _, f := range settings.GameFolders {
		if strings.EqualFold(filepath.Clean(f.Path), path) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFolderAlreadyExists, path)
		}
	}

	if in.Platform.UsesEmulator() {
		if in.EmulatorID == "" {
			return nil, fmt.Errorf("%w: %s folders need an emulator", domain.ErrNoEmulator, in.Platform)
		}
		emulators, err := shared.EffectiveEmulators(uc.catalog, settings)
		if err != nil {
			return nil, err
		}
		if _, ok := emulators[in.EmulatorID]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrEmulatorNotFound, in.EmulatorID)
		}
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = filepath.Base(path)
	}

	folder := domain.GameFolder{
		ID:         uc.ids.NewID(),
		Name:       name,
		Platform:   in.Platform,
		Path:       path,
		EmulatorID: in.EmulatorID,
	}
	if err := uc.games.SaveFolder(folder); err != nil {
		return nil, fmt.Errorf("save folder: %w", err)
	}
	return &AddGameFolderOutput{Folder: folder}, nil
}

// ListGameFoldersOutput contains the registered folders.
type ListGameFoldersOutput struct {
	Folders []domain.GameFolder
}

// ListGameFolders lists registered game folders.
type ListGameFolders struct {
	games domain.GameRepository
}

// NewListGameFolders creates a new ListGameFolders use case.
func NewListGameFolders(games domain.GameRepository) *ListGameFolders {
	return &ListGameFolders{games: games}
}

// Execute lists the folders in registration order.
func (uc *ListGameFolders) Execute(_ context.Context) (*ListGameFoldersOutput, error) {
	settings, err := uc.games.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &ListGameFoldersOutput{Folders: settings.GameFolders}, nil
}

// RemoveGameFolderInput contains the parameters for removing a folder.
type RemoveGameFolderInput struct {
	FolderID string
}

// RemoveGameFolderOutput contains the removed folder and how many games went with it.
type RemoveGameFolderOutput struct {
	Folder      domain.GameFolder
	PrunedGames int
}

// RemoveGameFolder unregisters a folder and removes the games found in it.
type RemoveGameFolder struct {
	games domain.GameRepository
}

// NewRemoveGameFolder creates a new RemoveGameFolder use case.
func NewRemoveGameFolder(games domain.GameRepository) *RemoveGameFolder {
	return &RemoveGameFolder{games: games}
}

// Execute removes the folder.
func (uc *RemoveGameFolder) Execute(_ context.Context, in RemoveGameFolderInput) (*RemoveGameFolderOutput, error) {
	settings, err := uc.games.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	folder, err := shared.FindFolder(settings, in.FolderID)
	if err != nil {
		return nil, err
	}

	pruned, err := uc.games.PruneGamesByFolder(folder.Path)
	if err != nil {
		return nil, fmt.Errorf("prune games: %w", err)
	}
	if err := uc.games.DeleteFolder(folder.ID); err != nil {
		return nil, fmt.Errorf("delete folder: %w", err)
	}
	return &RemoveGameFolderOutput{Folder: folder, PrunedGames: pruned}, nil
}
