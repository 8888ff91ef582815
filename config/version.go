package config

import "time"

// AppID identifies Cardinal to fyne for preferences and single-instance
// handling. It must stay stable across releases.
const AppID = "org.cardinal.quicksettings"

// Build information shown in the header and About window. Release builds set
// these with -ldflags "-X cardinal/config.Version=...".
var (
	Version   string
	GitCommit string
	BuildTime string
)

// unversioned marks a build made without release ldflags
const unversioned = "dev"

func init() {
	if Version == "" {
		Version = unversioned
	}
	if GitCommit == "" {
		GitCommit = "unknown"
	}
	if BuildTime == "" {
		BuildTime = time.Now().UTC().Format(time.RFC3339)
	}
}

// IsRelease reports whether the binary carries a release version.
func IsRelease() bool {
	return Version != unversioned
}
