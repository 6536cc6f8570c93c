// Package version provides build info and version strings
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables - set via ldflags
var (
	// Version is the semantic version (e.g., "1.0.0")
	Version = "dev"

	// Commit is the git commit hash
	Commit = "unknown"

	// BuildDate is the build timestamp
	BuildDate = "unknown"

	// GoVersion is set at build time
	GoVersion = runtime.Version()
)

// Info contains all version information
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Get returns the current version info
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// String returns a formatted version string
func (i Info) String() string {
	return fmt.Sprintf("%s (%s/%s)", i.Version, i.OS, i.Arch)
}

// Full returns a detailed multi-line version string
func (i Info) Full() string {
	return fmt.Sprintf("courtside %s\n  commit:     %s\n  built:      %s\n  go version: %s\n  platform:   %s/%s",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.OS, i.Arch)
}

// UserAgent returns the User-Agent header value for outbound requests
func UserAgent() string {
	return "courtside-cli/" + Version
}
