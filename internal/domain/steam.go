package domain

import "strings"

// SteamRunURL returns the URL that asks the Steam client to run an app.
func SteamRunURL(appID string) string {
	return "steam://rungameid/" + appID
}

// DefaultSteamOpener returns the command used to open steam:// URLs on an OS.
func DefaultSteamOpener(os OSKey) []string {
	switch os {
	case OSWindows:
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	case OSMac:
		return []string{"open"}
	default:
		return []string{"xdg-open"}
	}
}

// ParseOpener splits a configured opener command line on whitespace.
func ParseOpener(s string) []string {
	return strings.Fields(s)
}

// SteamLaunchSpec builds the command that opens a Steam game through opener.
func SteamLaunchSpec(appID string, opener []string) (LaunchSpec, error) {
	appID = strings.TrimSpace(appID)
	if appID == "" {
		return LaunchSpec{}, ErrMissingSteamAppID
	}
	if len(opener) == 0 {
		return LaunchSpec{}, ErrEmptyExecutable
	}
	args := make([]string, 0, len(opener))
	args = append(args, opener[1:]...)
	args = append(args, SteamRunURL(appID))
	return LaunchSpec{
		Exe:  opener[0],
		Args: args,
	}, nil
}
