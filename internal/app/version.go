package app

import "fmt"

// Build metadata, overridden with
// -ldflags "-X github.com/heartmarshall/clubhouse-backend/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the human-readable form used in startup logs and /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime)
}
