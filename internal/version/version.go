// Package version normalizes the build metadata injected via ldflags.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Fallback is reported for development builds and unparseable versions.
const Fallback = "0.0.0-dev"

// Info is the build identity shown by --version.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// New builds an Info with a normalized version.
func New(version, commit, date string) Info {
	return Info{
		Version: Normalize(version),
		Commit:  orUnknown(commit),
		Date:    orUnknown(date),
	}
}

// Normalize strips a leading "v" and returns the canonical semver string,
// or Fallback when the value is not a semantic version.
func Normalize(version string) string {
	v, err := parseSemver(version)
	if err != nil {
		return Fallback
	}
	return v.String()
}

// String renders the version line, e.g. "1.2.0 (commit: abc123, built: 2026-01-01)".
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.StrictNewVersion(version)
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
