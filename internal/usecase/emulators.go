package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/usecase/shared"
)

// UpsertEmulatorInput contains the parameters for creating or updating an emulator.
// Fields are ordered to minimize memory padding.
type UpsertEmulatorInput struct {
	ID       string          // Emulator to update; empty creates a new one
	Name     string          // Display name; kept from the existing entry if empty
	Platform domain.Platform // Platform; kept from the existing entry if empty
	Exe      string          // Executable for OS (required)
	OS       domain.OSKey    // OS being configured; defaults to the current OS
	Args     []string        // Arguments; may contain ${ROM}
}

// UpsertEmulatorOutput contains the saved emulator.
type UpsertEmulatorOutput struct {
	ID       string
	Emulator domain.EmulatorDef
}

// UpsertEmulator stores the command line of an emulator for one OS in the library settings.
// Updating an emulator that only exists in the catalog copies the catalog entry first,
// so its configuration for other OSes is kept.
type UpsertEmulator struct {
	games   domain.GameRepository
	catalog domain.EmulatorCatalog
	ids     domain.IDGenerator
	os      domain.OSKey
}

// NewUpsertEmulator creates a new UpsertEmulator use case.
func NewUpsertEmulator(
	games domain.GameRepository,
	catalog domain.EmulatorCatalog,
	ids domain.IDGenerator,
	os domain.OSKey,
) *UpsertEmulator {
	return &UpsertEmulator{games: games, catalog: catalog, ids: ids, os: os}
}

// Execute saves the emulator.
func (uc *UpsertEmulator) Execute(_ context.Context, in UpsertEmulatorInput) (*UpsertEmulatorOutput, error) {
	exe := domain.Dequote(strings.TrimSpace(in.Exe))
	if exe == "" {
		return nil, domain.ErrEmptyExecutable
	}
	osKey := in.OS
	if osKey == "" {
		osKey = uc.os
	}
	if _, err := domain.ParseOSKey(string(osKey)); err != nil {
		return nil, err
	}
	if in.Platform != "" && !in.Platform.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPlatform, in.Platform)
	}

	settings, err := uc.games.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	emulators, err := shared.EffectiveEmulators(uc.catalog, settings)
	if err != nil {
		return nil, err
	}

	id := in.ID
	var def domain.EmulatorDef
	if id == "" {
		id = uc.ids.NewID()
	} else {
		def = emulators[id]
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		def.Name = name
	}
	if def.Name == "" {
		def.Name = id
	}
	if in.Platform != "" {
		def.Platform = in.Platform
	}
	if !def.Platform.IsValid() {
		return nil, fmt.Errorf("%w: emulator %s needs a platform", domain.ErrInvalidPlatform, id)
	}

	def = def.WithOS(osKey, domain.EmulatorOSConfig{Exe: exe, Args: in.Args})
	if err := uc.games.SaveEmulator(id, def); err != nil {
		return nil, fmt.Errorf("save emulator: %w", err)
	}
	return &UpsertEmulatorOutput{ID: id, Emulator: def}, nil
}

// EmulatorEntry is an emulator with its ID.
type EmulatorEntry struct {
	ID       string
	Emulator domain.EmulatorDef
}

// ListEmulatorsOutput contains the effective emulators sorted by ID.
type ListEmulatorsOutput struct {
	Emulators []EmulatorEntry
}

// ListEmulators lists the built-in, user catalog and library emulators merged in that order.
type ListEmulators struct {
	games   domain.GameRepository
	catalog domain.EmulatorCatalog
}

// NewListEmulators creates a new ListEmulators use case.
func NewListEmulators(games domain.GameRepository, catalog domain.EmulatorCatalog) *ListEmulators {
	return &ListEmulators{games: games, catalog: catalog}
}

// Execute lists the emulators.
func (uc *ListEmulators) Execute(_ context.Context) (*ListEmulatorsOutput, error) {
	settings, err := uc.games.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	emulators, err := shared.EffectiveEmulators(uc.catalog, settings)
	if err != nil {
		return nil, err
	}
	out := &ListEmulatorsOutput{Emulators: make([]EmulatorEntry, 0, len(emulators))}
	for _, id := range emulators.SortedIDs() {
		out.Emulators = append(out.Emulators, EmulatorEntry{ID: id, Emulator: emulators[id]})
	}
	return out, nil
}
