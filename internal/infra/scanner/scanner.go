// Package scanner finds ROM files on disk.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/runoshun/launchpad/internal/domain"
)

// Ensure Scanner implements domain.ROMScanner.
var _ domain.ROMScanner = (*Scanner)(nil)

// Scanner walks directory trees looking for ROMs.
type Scanner struct{}

// New creates a new Scanner.
func New() *Scanner {
	return &Scanner{}
}

// Scan returns every file under dir whose extension matches the platform, sorted.
// Unreadable subdirectories are skipped; an unreadable dir is an error.
func (s *Scanner) Scan(dir string, platform domain.Platform) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, domain.ErrNotADirectory)
	}
	if len(domain.ROMExtensions(platform)) == 0 {
		return nil, nil
	}

	var matches []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if domain.IsROMFile(platform, path) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk folder: %w", err)
	}

	slices.Sort(matches)
	return matches, nil
}

// FS implements domain.FileSystem on the local disk.
type FS struct{}

// Ensure FS implements domain.FileSystem.
var _ domain.FileSystem = FS{}

// Exists reports whether path exists.
func (FS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}

// IsDir reports whether path is a directory.
func (FS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
