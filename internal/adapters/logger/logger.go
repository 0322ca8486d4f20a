// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/access-ci/nvport/internal/core/ports"
	"go.trai.ch/zerr"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog. Output goes to a pretty
// terminal handler; AttachFile additionally tees timestamped plain-text
// records into a per-run log file.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
	output io.Writer
	file   io.Writer
}

// New creates a new Logger instance writing to stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput updates the logger's terminal output destination. Used by tests
// to capture diagnostics without filesystem side effects. If w is nil,
// os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// AttachFile tees log records into the append-only run log at path.
func (l *Logger) AttachFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec // path comes from config
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open run log"), "path", path)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.file = f
	l.rebuild()
	return nil
}

// rebuild replaces the slog handler chain. Caller must hold the lock.
func (l *Logger) rebuild() {
	handlers := []slog.Handler{
		NewPrettyHandler(l.output, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}
	if l.file != nil {
		handlers = append(handlers, slog.NewTextHandler(l.file, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	l.logger = slog.New(fanout(handlers))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error, rendering zerr chains hierarchically.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	// Collect messages by traversing the error chain programmatically.
	var messages []string
	current := err
	for current != nil {
		if m, ok := current.(messager); ok {
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			messages = append(messages, current.Error())
			break
		}
	}

	var lines []string
	for i, msg := range messages {
		switch i {
		case 0:
			lines = append(lines, "Error: "+msg)
		case 1:
			lines = append(lines, "", "  Caused by:", "    → "+msg)
		default:
			lines = append(lines, "    → "+msg)
		}
	}

	l.logger.Error(strings.Join(lines, "\n"))
}

var _ ports.Logger = (*Logger)(nil)
