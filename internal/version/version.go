// Package version provides build-time version information for shade.
// Values are injected with ldflags, for example:
//
//	-ldflags "-X github.com/jmylchreest/shade/internal/version.Version=1.2.0"
package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"

	// GoVersion is the Go version used to build the binary.
	GoVersion = runtime.Version()
)

const shortCommitLen = 8

// Info holds all version information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns all version information as a structured type.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// ShortCommit returns the abbreviated commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > shortCommitLen {
		return i.Commit[:shortCommitLen]
	}
	return i.Commit
}

// String returns a human-readable version string.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "shade version %s (", i.Version)
	if i.Commit != "unknown" && i.Date != "unknown" {
		fmt.Fprintf(&b, "commit: %s, built: %s, ", i.ShortCommit(), i.Date)
	}
	fmt.Fprintf(&b, "%s, %s)", i.GoVersion, i.Platform)
	return b.String()
}

// String returns the human-readable version of the running binary.
func String() string {
	return GetInfo().String()
}

// Short returns a short version string suitable for --version.
func Short() string {
	return Version
}
