package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// DebugEnv raises the log level to debug when set to any non-empty value.
const DebugEnv = "TECHRADAR_DEBUG"

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to ~/.techradar/logs/techradar.log.
// Uses text format for human readability. The returned closer releases the
// log file.
func Init() (io.Closer, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return InitDir(filepath.Join(homeDir, ".techradar", "logs"))
}

// InitDir is Init with an explicit log directory.
func InitDir(logDir string) (io.Closer, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	logPath := filepath.Join(logDir, "techradar.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	Logger = slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: Level(),
	}))
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// Level returns the configured minimum level.
func Level() slog.Level {
	if os.Getenv(DebugEnv) != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
