package logger

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "mdparse",
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ParseLevel maps a configured level name to a log level, falling back to
// warn for unknown names.
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// ParseStarted logs the start of a parse
func (l *Logger) ParseStarted(source string, size int) {
	l.Debug("parse started",
		"source", source,
		"size", humanize.Bytes(uint64(size)))
}

// ParseCompleted logs a successful parse
func (l *Logger) ParseCompleted(source string, blocks int, duration time.Duration) {
	l.Info("parse completed",
		"source", source,
		"blocks", blocks,
		"duration", duration.Round(time.Microsecond))
}

// ParseFailed logs a failed parse
func (l *Logger) ParseFailed(source string, err error) {
	l.Error("parse failed",
		"source", source,
		"error", err)
}

// OutputWritten logs where the rendered document went
func (l *Logger) OutputWritten(mode, dest string, size int) {
	l.Info("output written",
		"mode", mode,
		"dest", dest,
		"size", humanize.Bytes(uint64(size)))
}

// ConfigLoaded logs the config file in use
func (l *Logger) ConfigLoaded(path string) {
	if path == "" {
		path = "(defaults)"
	}
	l.Debug("config loaded", "path", path)
}
