package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cseelye/simpleisy/internal/infrastructure/config"
)

// Logger wraps slog.Logger for the hub client and CLI.
//
// Log output is diagnostic only: hub results go to stdout, logs go to the
// configured destination (stderr by default) so that piped isyctl output
// stays clean.
//
// Thread Safety:
//   - All methods are safe for concurrent use from multiple goroutines.
type Logger struct {
	*slog.Logger
}

// New creates a Logger from the logging configuration.
//
// Format selects the handler: "json" for machine-parsable output, anything
// else gets the human-readable text handler. Every entry carries the
// service name and the build version so hub traces from different isyctl
// builds can be told apart.
func New(cfg config.LoggingConfig, version string) *Logger {
	return build(cfg, version, writerFor(cfg.Output))
}

// Default creates a logger for use before configuration is resolved:
// text on stderr at info level. The CLI replaces it with New once the
// config file, environment, and flags have been merged.
func Default() *Logger {
	return New(config.LoggingConfig{Level: "info", Format: "text", Output: "stderr"}, "dev")
}

// With returns a new Logger with additional default attributes.
//
// Used to tag a subsystem once instead of on every call:
//
//	tlog := logger.With("component", "transport")
//	tlog.Debug("request sent", "path", "nodes")
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// build assembles the handler chain. Split from New so tests can capture
// output in a buffer instead of a process stream.
func build(cfg config.LoggingConfig, version string, w io.Writer) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	handler = handler.WithAttrs([]slog.Attr{
		slog.String("service", "simpleisy"),
		slog.String("version", version),
	})

	return &Logger{Logger: slog.New(handler)}
}

// writerFor maps the configured output name to a process stream. Logs
// default to stderr; only an explicit "stdout" moves them.
func writerFor(output string) io.Writer {
	if strings.EqualFold(output, "stdout") {
		return os.Stdout
	}
	return os.Stderr
}

// parseLevel converts a config level string to slog.Level.
//
// Supported levels: debug, info, warn, error.
// Defaults to info if unrecognised.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
