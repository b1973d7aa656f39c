package domain

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
)

// Platform identifies the system a game runs on.
type Platform string

// Known platforms.
const (
	PlatformSteam  Platform = "steam"
	PlatformPS2    Platform = "ps2"
	PlatformPS3    Platform = "ps3"
	PlatformGBA    Platform = "gba"
	PlatformCustom Platform = "custom"
)

// AllPlatforms returns every known platform in display order.
func AllPlatforms() []Platform {
	return []Platform{PlatformSteam, PlatformPS2, PlatformPS3, PlatformGBA, PlatformCustom}
}

// ParsePlatform converts a user supplied string into a Platform.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlatform, s)
	}
	return p, nil
}

// IsValid returns true if the platform is a known value.
func (p Platform) IsValid() bool {
	return slices.Contains(AllPlatforms(), p)
}

// UsesEmulator reports whether games on this platform are started through an emulator.
// Steam games are opened through the Steam client instead.
func (p Platform) UsesEmulator() bool {
	return p != PlatformSteam
}

// OSKey selects the per-OS section of an emulator definition.
type OSKey string

// Supported OS keys.
const (
	OSWindows OSKey = "win"
	OSMac     OSKey = "mac"
	OSLinux   OSKey = "linux"
)

// OSKeyFor maps a GOOS value to an OSKey. Unknown systems fall back to linux.
func OSKeyFor(goos string) OSKey {
	switch goos {
	case "windows":
		return OSWindows
	case "darwin":
		return OSMac
	default:
		return OSLinux
	}
}

// CurrentOSKey returns the OSKey of the running system.
func CurrentOSKey() OSKey {
	return OSKeyFor(runtime.GOOS)
}

// ParseOSKey converts a user supplied string into an OSKey.
func ParseOSKey(s string) (OSKey, error) {
	switch k := OSKey(strings.ToLower(strings.TrimSpace(s))); k {
	case OSWindows, OSMac, OSLinux:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOSKey, s)
	}
}

// Game is an entry in the library.
// Fields are ordered to minimize memory padding.
type Game struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Platform   Platform `json:"platform"`
	SteamAppID string   `json:"steamAppId,omitempty"`
	ROMPath    string   `json:"romPath,omitempty"`
	EmulatorID string   `json:"emulatorId,omitempty"` // Emulator used to launch; falls back to the folder's emulator
	CoverURL   string   `json:"coverUrl,omitempty"`
	Favorite   bool     `json:"favorite,omitempty"`
}

// EmulatorOSConfig is the command line used to start an emulator on one OS.
// Args may contain the ${ROM} placeholder.
type EmulatorOSConfig struct {
	Exe  string   `json:"exe" yaml:"exe"`
	Args []string `json:"args" yaml:"args"`
}

// EmulatorDef describes an emulator and how to invoke it on each OS.
type EmulatorDef struct {
	Win      *EmulatorOSConfig `json:"win,omitempty" yaml:"win,omitempty"`
	Mac      *EmulatorOSConfig `json:"mac,omitempty" yaml:"mac,omitempty"`
	Linux    *EmulatorOSConfig `json:"linux,omitempty" yaml:"linux,omitempty"`
	Name     string            `json:"name" yaml:"name"`
	Platform Platform          `json:"platform" yaml:"platform"`
}

// ForOS returns the configuration for the given OS, or nil if there is none.
func (d EmulatorDef) ForOS(os OSKey) *EmulatorOSConfig {
	switch os {
	case OSWindows:
		return d.Win
	case OSMac:
		return d.Mac
	case OSLinux:
		return d.Linux
	default:
		return nil
	}
}

// WithOS returns a copy of d with the configuration for os replaced.
func (d EmulatorDef) WithOS(os OSKey, cfg EmulatorOSConfig) EmulatorDef {
	c := cfg
	c.Args = slices.Clone(cfg.Args)
	switch os {
	case OSWindows:
		d.Win = &c
	case OSMac:
		d.Mac = &c
	case OSLinux:
		d.Linux = &c
	}
	return d
}

// EmulatorMap maps emulator IDs to their definitions.
type EmulatorMap map[string]EmulatorDef

// Merge returns a new map containing m with every entry of override applied on top.
func (m EmulatorMap) Merge(override EmulatorMap) EmulatorMap {
	out := make(EmulatorMap, len(m)+len(override))
	for id, def := range m {
		out[id] = def
	}
	for id, def := range override {
		out[id] = def
	}
	return out
}

// SortedIDs returns the emulator IDs in lexical order.
func (m EmulatorMap) SortedIDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// GameFolder is a directory scanned for ROMs of a single platform.
type GameFolder struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Platform   Platform `json:"platform"`
	Path       string   `json:"path"`
	EmulatorID string   `json:"emulatorId,omitempty"`
}

// Contains reports whether path lies inside the folder.
// The comparison is case-insensitive to match how ROM paths are pruned.
func (f GameFolder) Contains(path string) bool {
	return HasPathPrefixFold(path, f.Path)
}

// Settings holds user managed launcher settings.
type Settings struct {
	Emulators   EmulatorMap  `json:"emulators"`
	GameFolders []GameFolder `json:"gameFolders"`
}

// GameFilter specifies criteria for listing games.
type GameFilter struct {
	Platform      Platform // Empty means all platforms
	Query         string   // Case-insensitive title substring; blank matches all
	FavoritesOnly bool
}

// Match reports whether g satisfies the filter.
func (f GameFilter) Match(g *Game) bool {
	if f.Platform != "" && g.Platform != f.Platform {
		return false
	}
	if f.FavoritesOnly && !g.Favorite {
		return false
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		return strings.Contains(strings.ToLower(g.Title), strings.ToLower(q))
	}
	return true
}

// SortGames orders games with favorites first, then by case-insensitive title, then by ID.
func SortGames(games []*Game) {
	slices.SortStableFunc(games, func(a, b *Game) int {
		if a.Favorite != b.Favorite {
			if a.Favorite {
				return -1
			}
			return 1
		}
		if c := strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

// HasPathPrefixFold reports whether path is prefix or lies below it, ignoring case.
// Only whole path components match, so "/roms/ps2" does not contain "/roms/ps2-jp".
func HasPathPrefixFold(path, prefix string) bool {
	if prefix == "" {
		return false
	}
	trimmed := strings.TrimRight(prefix, `/\`)
	if trimmed == "" {
		// Filesystem root.
		return strings.HasPrefix(path, prefix[:1])
	}
	p, pre := strings.ToLower(path), strings.ToLower(trimmed)
	if !strings.HasPrefix(p, pre) {
		return false
	}
	rest := p[len(pre):]
	return rest == "" || rest[0] == '/' || rest[0] == '\\'
}
