package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// logFilePermissions is the mode used when logging to a file path.
const logFilePermissions = 0o644

// Config holds logger configuration options
type Config struct {
	// Level is the minimum log level to output
	Level string

	// Format is the output format (json, console, auto)
	Format string

	// Output is where to write logs (stderr, stdout, or file path)
	Output string

	// TimeFormat for timestamps (kitchen, rfc3339, unix)
	TimeFormat string

	// NoColor disables color output in console mode
	NoColor bool

	// AddCaller includes file:line in log output
	AddCaller bool
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "auto", // auto-detect based on terminal
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
		AddCaller:  false,
	}
}

// NewLoggerFromConfig creates a new logger from configuration
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	writer := getWriter(cfg)

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// Configure updates the default logger with the given configuration
func Configure(cfg *Config) {
	logger := NewLoggerFromConfig(cfg)
	SetDefault(logger)
}

// getWriter creates the appropriate writer based on configuration
func getWriter(cfg *Config) io.Writer {
	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		output = os.Stdout
	case "", "stderr":
		output = os.Stderr
	case "discard", "none":
		output = io.Discard
	default:
		// Treat as file path
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePermissions)
		if err != nil {
			output = os.Stderr
		} else {
			output = file
		}
	}

	// Wrap in console writer unless JSON was requested, or format is auto
	// and we're not attached to a terminal
	switch strings.ToLower(cfg.Format) {
	case "json":
		return output
	case "console", "pretty":
		return consoleWriter(output, cfg)
	default: // auto
		if output == os.Stderr && isatty() {
			return consoleWriter(output, cfg)
		}
		return output
	}
}

// consoleWriter wraps a writer in zerolog's human-readable console writer.
func consoleWriter(out io.Writer, cfg *Config) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFormat(cfg.TimeFormat),
		NoColor:    cfg.NoColor,
	}
}

// parseLevel converts a level string to a zerolog level, defaulting to info.
func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return parsed
}

// timeFormat maps a named time format to its layout string.
func timeFormat(name string) string {
	switch strings.ToLower(name) {
	case "rfc3339":
		return time.RFC3339
	case "unix":
		return time.UnixDate
	default:
		return time.Kitchen
	}
}
