package config

import (
	"os"
	"strings"
)

// Environment variables understood by all binaries.
const (
	EnvWorkspace = "CUSTOM_EXPLORER_WORKSPACE"
	EnvStatePath = "CUSTOM_EXPLORER_STATE"
	EnvExclude   = "CUSTOM_EXPLORER_EXCLUDE"
	EnvLogLevel  = "CUSTOM_EXPLORER_LOG_LEVEL"
)

// WorkspacePath returns the workspace the explorer state is scoped to,
// from CUSTOM_EXPLORER_WORKSPACE, falling back to the working directory.
func WorkspacePath() string {
	if env := os.Getenv(EnvWorkspace); env != "" {
		return env
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// StatePath returns an explicit state database path, or empty to let the
// sqlite adapter derive one from the workspace path.
func StatePath() string {
	return os.Getenv(EnvStatePath)
}

// LogLevel returns the configured log level, defaulting to info.
func LogLevel() string {
	if env := os.Getenv(EnvLogLevel); env != "" {
		return env
	}
	return "info"
}

// EnvSettings reads explorer settings from the environment on every call,
// so edits to CUSTOM_EXPLORER_EXCLUDE apply on the next exclusion check.
type EnvSettings struct{}

// ExcludedSuffixes returns the comma-separated suffix list from
// CUSTOM_EXPLORER_EXCLUDE, with blanks dropped.
func (EnvSettings) ExcludedSuffixes() []string {
	raw := os.Getenv(EnvExclude)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
