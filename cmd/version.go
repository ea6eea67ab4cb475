// Package cmd contains build-time variables injected via ldflags.
package cmd

import "fmt"

// Build-time variables set via ldflags, for example:
//
//	go build -ldflags "-X github.com/OleBialas/quarto-docker-render/cmd.Version=v1.2.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// VersionString describes the build in one line.
func VersionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
