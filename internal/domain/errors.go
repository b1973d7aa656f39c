package domain

import "errors"

// Domain errors.
var (
	ErrGameNotFound        = errors.New("game not found")
	ErrFolderNotFound      = errors.New("game folder not found")
	ErrEmulatorNotFound    = errors.New("emulator not found")
	ErrNoEmulator          = errors.New("no emulator assigned")
	ErrNoEmulatorConfig    = errors.New("no emulator config for this OS")
	ErrMissingROMPath      = errors.New("missing ROM path")
	ErrROMNotFound         = errors.New("ROM not found")
	ErrMissingSteamAppID   = errors.New("missing steam app id")
	ErrInvalidPlatform     = errors.New("invalid platform")
	ErrInvalidOSKey        = errors.New("invalid OS key")
	ErrNotADirectory       = errors.New("not a directory")
	ErrEmptyTitle          = errors.New("title cannot be empty")
	ErrEmptyExecutable     = errors.New("executable cannot be empty")
	ErrConfigExists        = errors.New("config file already exists")
	ErrFolderAlreadyExists = errors.New("game folder already registered")
)
