// ============================================================================
// MunchEx - Arithmetic language front end
// ============================================================================
//
// Package:     version
// Description: Central version management for the binary and its components
// Author:      Munch42
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for MunchEx components
const (
	// Application version
	App = "0.1.0"

	// Component versions
	Language = "0.1.0"
	REPL     = "0.1.0"
	History  = "0.1.0"
)

// Build metadata, set with -ldflags "-X ...version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "language":
		return Language
	case "repl":
		return REPL
	case "history":
		return History
	default:
		return App
	}
}

// Info describes the running binary
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   App,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a one line version banner
func (i Info) String() string {
	return fmt.Sprintf("MunchEx v%s (%s, built %s)", i.Version, i.GitCommit, i.BuildDate)
}
