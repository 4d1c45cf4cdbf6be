// Package version records the build-time identity of the nsmigrate binary.
package version

// Set via -ldflags at release build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
