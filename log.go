package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
)

// setupLog configures the global logger. Logging is off unless
// BANGLAGHORI_DEBUG is set, in which case debug output goes to a file under
// the user cache directory. The returned closer must be called on exit.
func setupLog() (func() error, error) {
	if os.Getenv("BANGLAGHORI_DEBUG") == "" {
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}

	scope := gap.NewScope(gap.User, "banglaghori")
	dir, err := scope.CacheDir()
	if err != nil {
		return nil, fmt.Errorf("unable to resolve cache directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create cache directory: %w", err)
	}

	path := filepath.Join(dir, "banglaghori.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("unable to open log file: %w", err)
	}

	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.SetReportTimestamp(true)
	log.Debug("Logging to file", "path", path)
	return f.Close, nil
}
