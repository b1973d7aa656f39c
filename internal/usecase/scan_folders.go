package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/usecase/shared"
)

// ScanFoldersInput contains the parameters for scanning folders.
type ScanFoldersInput struct {
	FolderID string // Scan only this folder; empty scans all
}

// FolderScanResult reports the outcome of scanning one folder.
// Fields are ordered to minimize memory padding.
type FolderScanResult struct {
	Err     error
	Folder  domain.GameFolder
	Found   int // ROM files seen
	Added   int // Games added to the library
	Removed int // Games dropped because their ROM file is gone
}

// ScanFoldersOutput contains per-folder results.
type ScanFoldersOutput struct {
	Results []FolderScanResult
}

// Added returns the total number of games added.
func (o *ScanFoldersOutput) Added() int {
	n := 0
	for _, r := range o.Results {
		n += r.Added
	}
	return n
}

// Removed returns the total number of games removed.
func (o *ScanFoldersOutput) Removed() int {
	n := 0
	for _, r := range o.Results {
		n += r.Removed
	}
	return n
}

// ScanFolders walks registered folders, adds ROMs that are not in the library yet
// and drops games inside a scanned folder whose ROM file no longer exists.
// A folder that cannot be read is reported in its result and does not stop the others;
// its games are left untouched.
type ScanFolders struct {
	games   domain.GameRepository
	scanner domain.ROMScanner
	fs      domain.FileSystem
	ids     domain.IDGenerator
	logger  domain.Logger
}

// NewScanFolders creates a new ScanFolders use case.
func NewScanFolders(
	games domain.GameRepository,
	scanner domain.ROMScanner,
	fs domain.FileSystem,
	ids domain.IDGenerator,
	logger domain.Logger,
) *ScanFolders {
	return &ScanFolders{games: games, scanner: scanner, fs: fs, ids: ids, logger: logger}
}

// Execute scans the folders.
func (uc *ScanFolders) Execute(_ context.Context, in ScanFoldersInput) (*ScanFoldersOutput, error) {
	settings, err := uc.games.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	folders := settings.GameFolders
	if in.FolderID != "" {
		folder, err := shared.FindFolder(settings, in.FolderID)
		if err != nil {
			return nil, err
		}
		folders = []domain.GameFolder{folder}
	}

	existing, err := uc.games.ListGames(domain.GameFilter{})
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, g := range existing {
		if g.ROMPath != "" {
			known[romKey(g.ROMPath)] = struct{}{}
		}
	}

	out := &ScanFoldersOutput{Results: make([]FolderScanResult, 0, len(folders))}
	var added []*domain.Game
	removed := make(map[string]struct{})
	for _, folder := range folders {
		result := FolderScanResult{Folder: folder}
		files, err := uc.scanner.Scan(folder.Path, folder.Platform)
		if err != nil {
			result.Err = err
			uc.logger.Warn("", "scan", fmt.Sprintf("%s: %v", folder.Path, err))
			out.Results = append(out.Results, result)
			continue
		}

		result.Found = len(files)
		for _, g := range existing {
			if _, ok := removed[g.ID]; ok || g.ROMPath == "" || !folder.Contains(g.ROMPath) {
				continue
			}
			if uc.fs.Exists(domain.Dequote(g.ROMPath)) {
				continue
			}
			removed[g.ID] = struct{}{}
			delete(known, romKey(g.ROMPath))
			result.Removed++
		}
		for _, path := range files {
			key := romKey(path)
			if _, ok := known[key]; ok {
				continue
			}
			known[key] = struct{}{}
			added = append(added, &domain.Game{
				ID:         uc.ids.NewID(),
				Title:      domain.TitleFromFilename(path),
				Platform:   folder.Platform,
				ROMPath:    path,
				EmulatorID: folder.EmulatorID,
			})
			result.Added++
		}
		uc.logger.Info("", "scan", fmt.Sprintf("%s: %d found, %d added, %d removed", folder.Path, result.Found, result.Added, result.Removed))
		out.Results = append(out.Results, result)
	}

	for id := range removed {
		if err := uc.games.DeleteGame(id); err != nil && !errors.Is(err, domain.ErrGameNotFound) {
			return nil, fmt.Errorf("remove game %s: %w", id, err)
		}
	}
	if len(added) > 0 {
		if err := uc.games.AddGames(added); err != nil {
			return nil, fmt.Errorf("add games: %w", err)
		}
	}
	return out, nil
}

// romKey normalizes a ROM path for duplicate detection.
func romKey(path string) string {
	return strings.ToLower(domain.Dequote(path))
}
