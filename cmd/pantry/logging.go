package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

// initLogging sends structured logs to a file under the cache dir, and
// additionally to stderr in text form when verbose is set. The library
// packages stay silent; only the CLI logs.
func initLogging(verbose bool) error {
	logDir := cacheDir()
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Join(logDir, "pantry.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var handler slog.Handler = slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: level})
	if verbose {
		handler = multiHandler{handlers: []slog.Handler{
			handler,
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
		}}
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// cacheDir returns the per-user cache directory for the log file.
func cacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "pantry")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "pantry")
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Caches", "pantry")
	}
	return filepath.Join(home, ".cache", "pantry")
}
