package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string, level log.Level) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(writers ...io.Writer) *Logger {
	w := io.MultiWriter(writers...)
	return New(w)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// Level maps a verbosity flag value onto a log level, defaulting to info
// when the value is not a known level name
func Level(verbose string) log.Level {
	level, err := log.ParseLevel(verbose)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// ParseStarted logs the start of a parse run
func (l *Logger) ParseStarted(filename string) {
	l.Info("parse started",
		"file", filename)
}

// ParseCompleted logs a successful parse run
func (l *Logger) ParseCompleted(filename string, keys int, duration time.Duration) {
	l.Info("parse completed",
		"file", filename,
		"keys", keys,
		"duration", duration.Round(time.Millisecond))
}

// ParseFailed logs a failed parse run
func (l *Logger) ParseFailed(filename string, err error) {
	l.Error("parse failed",
		"file", filename,
		"error", err)
}

// OutputWritten logs where the rendered result went
func (l *Logger) OutputWritten(path, format string, size int) {
	l.Debug("output written",
		"path", path,
		"format", format,
		"bytes", size)
}

// LookupFailed logs a key path that is not present in the result tree
func (l *Logger) LookupFailed(filename, path string) {
	l.Error("key not found",
		"file", filename,
		"path", path)
}
