// Package logger provides a thin wrapper around zerolog.Logger that writes the
// relocation trail: one "timestamp SEVERITY message" line per event, appended
// to a local file.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger. Loggers
// are passed explicitly; nothing in this package touches zerolog's global logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	File  string `mapstructure:"file" yaml:"file" env:"FILE"`
	Level string `mapstructure:"level" yaml:"level" env:"LEVEL"`
}

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
	closer io.Closer
}

// New opens cfg.File for appending, creating parent directories as needed,
// and returns a logger writing to it.
func New(cfg Config) (*Logger, error) {
	if cfg.File == "" {
		return nil, fmt.Errorf("log file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("unable to create log directory: %w", err)
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("unable to open log file: %w", err)
	}

	l := NewWriter(f, cfg.Level)
	l.closer = f
	return l, nil
}

// NewWriter returns a logger writing plain text lines to w. Tests use it to
// capture output per test.
func NewWriter(w io.Writer, level string) *Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i any) string {
			if s, ok := i.(string); ok {
				return strings.ToUpper(s)
			}
			return "INFO"
		},
	}
	zl := zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
	return &Logger{Logger: zl}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Close closes the underlying log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
