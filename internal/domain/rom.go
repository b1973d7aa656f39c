package domain

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// ROMPlaceholder is replaced by the ROM path in emulator arguments.
const ROMPlaceholder = "${ROM}"

// romExtensions lists the file extensions recognized as games for each platform.
var romExtensions = map[Platform][]string{
	PlatformPS2:    {".iso", ".chd", ".cue", ".bin"},
	PlatformPS3:    {".pkg", ".iso"},
	PlatformGBA:    {".gba", ".zip"},
	PlatformCustom: {".exe"},
}

// ROMExtensions returns the extensions scanned for a platform.
// Steam has none because its games are not files.
func ROMExtensions(p Platform) []string {
	return slices.Clone(romExtensions[p])
}

// IsROMFile reports whether path has one of the platform's ROM extensions.
func IsROMFile(p Platform, path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range romExtensions[p] {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

var (
	titleExtRe = regexp.MustCompile(`(?i)\.(iso|chd|bin|cue|pkg|gba|zip|exe)$`)
	titleSepRe = regexp.MustCompile(`[._]`)
)

// TitleFromFilename derives a display title from a ROM path.
// Both slash and backslash are treated as separators so Windows paths work on any host.
func TitleFromFilename(path string) string {
	base := path
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		base = path[i+1:]
	}
	if base == "" {
		base = path
	}
	base = titleExtRe.ReplaceAllString(base, "")
	base = titleSepRe.ReplaceAllString(base, " ")
	return strings.TrimSpace(base)
}

// Dequote removes leading and trailing double quotes, as left behind by
// "copy as path" in file managers.
func Dequote(s string) string {
	return strings.Trim(s, `"`)
}

// BuildROMLaunchSpec builds the command that starts game with emu on the given OS.
// The emulator's directory becomes the working directory, since several
// emulators look for their BIOS and config files next to the executable.
// A bare command name resolved through PATH keeps the caller's directory.
func BuildROMLaunchSpec(game *Game, emu EmulatorDef, os OSKey) (LaunchSpec, error) {
	cfg := emu.ForOS(os)
	if cfg == nil {
		return LaunchSpec{}, ErrNoEmulatorConfig
	}
	if game.ROMPath == "" {
		return LaunchSpec{}, ErrMissingROMPath
	}

	exe := Dequote(cfg.Exe)
	rom := Dequote(game.ROMPath)

	args := make([]string, len(cfg.Args))
	for i, a := range cfg.Args {
		args[i] = strings.ReplaceAll(a, ROMPlaceholder, rom)
	}

	spec := LaunchSpec{Exe: exe, Args: args}
	if dir := filepath.Dir(exe); dir != "." {
		spec.Cwd = dir
	}
	return spec, nil
}
