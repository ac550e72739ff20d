// Package logging sets up the process-wide slog logger. The TUI owns the
// terminal, so logs always go to a rotated file, never stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/PostHog/Twig-sub005/internal/appdirs"
)

// Config tunes the file logger. Zero values fall back to defaults.
type Config struct {
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Init installs the default slog logger writing to the app log file. The
// returned func closes the underlying writer.
func Init(cfg Config) (func() error, error) {
	dir, err := appdirs.LogDir()
	if err != nil {
		return nil, err
	}
	writer := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "twigpanes.log"),
		MaxSize:    defaultInt(cfg.MaxSizeMB, 10),
		MaxBackups: defaultInt(cfg.MaxBackups, 3),
		MaxAge:     defaultInt(cfg.MaxAgeDays, 14),
		Compress:   true,
	}
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(newLogger(writer, level))
	return writer.Close, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("logging: unknown level %q", value)
	}
}

func defaultInt(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
