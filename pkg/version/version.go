// Package version holds build information injected with -ldflags, e.g.
// -X github.com/derdilla/setwlkbmap/pkg/version.Version=0.2.0
package version

import "fmt"

var (
	// Version is the current version of the application
	Version = "0.1.0"

	// GitCommit is the git commit hash (set during build)
	GitCommit = "unknown"

	// BuildDate is the build date (set during build)
	BuildDate = "unknown"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("setwlkbmap version %s (commit: %s, built: %s)",
		Version, GitCommit, BuildDate)
}
