// Package cli implements the reqs command-line interface.
//
// This package provides commands for editing requirements.txt files across
// a directory tree (add, remove, update, sort), inspecting them (find, cat),
// querying package indexes (versions), and managing configuration and the
// HTTP response cache. The CLI is built using cobra with logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - add: Add a package to each requirements file
//   - remove: Delete a package from each requirements file
//   - update: Pin a package to a version in each requirements file
//   - sort: Sort requirements files in place
//   - find: Locate files declaring a package
//   - versions: List available versions from a package index
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Warnings
// (locale fallback, skipped files) go through the shared logger on stderr.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
