// Package logging configures the structured logger for the CLI.
// The terminal is owned by the dashboard, so all logging goes to a
// rotating file; nothing is ever written to stdout.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/courtside/courtside/src/paths"
)

var (
	logger     *slog.Logger
	loggerOnce sync.Once
)

// Config holds logging configuration
type Config struct {
	Level    string // debug, info, warn, error (default: warn)
	File     string // log file path (empty = {log_dir}/courtside.log)
	MaxSize  int    // max log file size in MB (default: 10)
	MaxFiles int    // max rotated files to keep (default: 5)
}

// Init initializes the logger with configuration. Safe to call more
// than once; only the first call takes effect.
func Init(cfg Config) error {
	var initErr error
	loggerOnce.Do(func() {
		logPath := cfg.File
		if logPath == "" {
			logPath = paths.LogFile()
		}
		logPath = paths.Expand(logPath)

		if err := paths.EnsureParent(logPath); err != nil {
			initErr = fmt.Errorf("create log dir: %w", err)
			return
		}

		maxSize := cfg.MaxSize
		if maxSize == 0 {
			maxSize = 10 // MB
		}
		maxFiles := cfg.MaxFiles
		if maxFiles == 0 {
			maxFiles = 5
		}

		rotatingWriter := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    maxSize,
			MaxBackups: maxFiles,
			MaxAge:     30, // days
			Compress:   true,
		}

		handler := slog.NewJSONHandler(rotatingWriter, &slog.HandlerOptions{
			Level: ParseLevel(cfg.Level),
		})

		logger = slog.New(handler)
		slog.SetDefault(logger)
	})
	return initErr
}

// ParseLevel maps a config string to a slog level. Unknown values and
// the empty string default to warn.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Logger returns the configured logger, or a stderr fallback when Init
// has not run (early startup errors, tests).
func Logger() *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return logger
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}
