// Package version provides centralized version management for practicestuff.
// It supports semantic versioning and build-time injection via -ldflags.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// AppName is the program name used in usage lines and error messages.
const AppName = "practicestuff"

// Build information that can be set at compile time via -ldflags.
var (
	// Version is the semantic version of the application.
	Version = "1.0.0"

	// GitCommit is the git commit hash when the binary was built.
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// Info represents the full version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the version information for the current build.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Short returns the one-line form printed by --version.
func (i Info) Short() string {
	return fmt.Sprintf("%s %s", AppName, i.Version)
}

// IsValid reports whether the compiled-in version parses as semantic
// versioning. Guarded by a test so a bad release tag fails CI.
func IsValid() bool {
	_, err := semver.NewVersion(Version)
	return err == nil
}
