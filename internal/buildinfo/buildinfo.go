// Package buildinfo carries release metadata injected at link time.
package buildinfo

// Set via ldflags for release binaries; empty for local/dev builds,
// where the version command falls back to debug.ReadBuildInfo.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
