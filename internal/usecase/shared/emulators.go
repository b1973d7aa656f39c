package shared

import (
	"fmt"

	"github.com/runoshun/launchpad/internal/domain"
)

// EffectiveEmulators returns the catalog with the library's emulator settings applied on top.
func EffectiveEmulators(catalog domain.EmulatorCatalog, settings *domain.Settings) (domain.EmulatorMap, error) {
	base, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load emulator catalog: %w", err)
	}
	return base.Merge(settings.Emulators), nil
}
