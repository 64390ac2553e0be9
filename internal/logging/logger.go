// Package logging wires zerolog loggers through context.Context.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls the optional rotating log file.
type FileConfig struct {
	Enabled       bool
	Dir           string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return newWithWriter(cfg, consoleOrJSON(cfg, os.Stderr))
}

// NewWithFile creates a logger that writes to a rotating file, and to stderr
// when requested. The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled {
		if !fileCfg.WriteToStderr {
			return zerolog.Nop(), func() {}, nil
		}
		return New(cfg), func() {}, nil
	}

	rotator, err := NewLogRotator(fileCfg.Dir, fileCfg.MaxSizeMB, fileCfg.MaxBackups, fileCfg.MaxAgeDays)
	if err != nil {
		if fileCfg.WriteToStderr {
			return New(cfg), func() {}, err
		}
		return zerolog.Nop(), func() {}, err
	}

	// The file always gets JSON so it can be grepped and parsed later.
	var out io.Writer = rotator
	if fileCfg.WriteToStderr {
		out = zerolog.MultiLevelWriter(rotator, consoleOrJSON(cfg, os.Stderr))
	}

	cleanup := func() { _ = rotator.Close() }
	return newWithWriter(cfg, out), cleanup, nil
}

// NewFromConfigValues creates a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// LOCALPORT_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// LOCALPORT_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("LOCALPORT_LOG_LEVEL"), os.Getenv("LOCALPORT_LOG_FORMAT"))
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

func consoleOrJSON(cfg Config, w io.Writer) io.Writer {
	if cfg.Format == "json" {
		return w
	}
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: timeFormat}
}

func newWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}
