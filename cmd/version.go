// Package cmd holds build metadata for the nsvalidate binary.
package cmd

import "runtime"

// Build-time variables set via ldflags:
//
//	-X github.com/thoreinstein/nsvalidate/cmd.Version=v1.2.3
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// GoVersion returns the Go toolchain the binary was built with.
func GoVersion() string {
	return runtime.Version()
}
