package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/Halkcyon/transunico/internal/clipboard"
)

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// ValidationResult separates errors that must stop the program from those
// that were corrected in place.
type ValidationResult struct {
	Fatals   []error
	Warnings []error
}

func (r ValidationResult) HasFatals() bool {
	return len(r.Fatals) > 0
}

// AllErrors returns fatals followed by warnings.
func (r ValidationResult) AllErrors() []error {
	all := make([]error, 0, len(r.Fatals)+len(r.Warnings))
	all = append(all, r.Fatals...)
	return append(all, r.Warnings...)
}

// ValidateTiered checks the config. Unusable clipboard settings are fatal.
// Bad logging settings are reset to their defaults and reported as
// warnings.
func (c *Config) ValidateTiered() ValidationResult {
	var result ValidationResult

	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = clipboard.BackendAuto
	}
	if !slices.Contains(clipboard.Backends, c.Backend) {
		result.Fatals = append(result.Fatals, fmt.Errorf("backend %q is not valid (use %s)", c.Backend, strings.Join(clipboard.Backends, ", ")))
	}

	if c.Backend == clipboard.BackendCommand && len(c.CopyCommand) == 0 {
		result.Fatals = append(result.Fatals, fmt.Errorf("backend %q requires copy_command", c.Backend))
	}
	if c.Backend != clipboard.BackendCommand && (len(c.CopyCommand) > 0 || len(c.PasteCommand) > 0) {
		result.Warnings = append(result.Warnings, fmt.Errorf("copy_command and paste_command are ignored by backend %q", c.Backend))
	}

	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		result.Warnings = append(result.Warnings, fmt.Errorf("log_level %q is not valid (use debug, info, warn, error), using warn", c.LogLevel))
		c.LogLevel = "warn"
	}

	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		result.Warnings = append(result.Warnings, fmt.Errorf("log_format %q is not valid (use text or json), using text", c.LogFormat))
		c.LogFormat = "text"
	}

	for _, err := range result.Warnings {
		slog.Warn("config validation", "error", err)
	}

	return result
}
