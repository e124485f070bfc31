// Package log provides structured file logging for vimgrid.
// Logging is off until Init is called, which cmd does for --debug or
// VIMGRID_DEBUG. Every written line is also published on a broker so the
// app can tail the log while it runs.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/zjrosen/vimgrid/internal/pubsub"
)

// MaxSizeMB is the size at which the debug log is rotated.
const MaxSizeMB = 5

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatConfig    Category = "config"    // Configuration loading/saving
	CatGrid      Category = "grid"      // Grid mutations and external updates
	CatMode      Category = "mode"      // Mode transitions and pending operators
	CatUI        Category = "ui"        // App shell and rendering
	CatClipboard Category = "clipboard" // System clipboard mirroring
)

// Logger writes formatted lines and publishes them.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	closer   io.Closer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[string]
}

var (
	stdMu sync.RWMutex
	std   *Logger
)

// Init makes path the log destination, appending to it and rotating it once
// it grows past MaxSizeMB. The returned function closes the file and disables logging.
func Init(path string) (func(), error) {
	// lumberjack opens lazily, so probe the path up front.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G304: user-chosen debug log path
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	_ = f.Close()

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    MaxSizeMB,
		MaxBackups: 3,
		MaxAge:     7, // days
	}
	l := newLogger(w)
	l.closer = w
	install(l)
	return func() { uninstall(l) }, nil
}

// InitWriter logs to w. Used by tests and for logging to stderr.
func InitWriter(w io.Writer) func() {
	l := newLogger(w)
	install(l)
	return func() { uninstall(l) }
}

func newLogger(w io.Writer) *Logger {
	return &Logger{
		writer:   w,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](),
	}
}

func install(l *Logger) {
	stdMu.Lock()
	prev := std
	std = l
	stdMu.Unlock()
	if prev != nil {
		prev.close()
	}
}

func uninstall(l *Logger) {
	stdMu.Lock()
	if std == l {
		std = nil
	}
	stdMu.Unlock()
	l.close()
}

func (l *Logger) close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = false
	l.broker.Close()
	if l.closer != nil {
		_ = l.closer.Close()
		l.closer = nil
	}
}

func current() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs at error level with err appended as the error field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.minLevel {
		return
	}

	line := format(time.Now(), level, cat, msg, fields)
	_, _ = io.WriteString(l.writer, line+"\n")
	l.broker.Publish(pubsub.CreatedEvent, line)
}

// format renders: 2026-01-02T15:04:05 [WARN] [grid] message key=value key2=value2
func format(ts time.Time, level Level, cat Category, msg string, fields []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", ts.Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	return b.String()
}

// Event is a published log line.
type Event = pubsub.Event[string]

// Listener tails published log lines from a Bubble Tea update loop.
type Listener = pubsub.ContinuousListener[string]

// NewListener subscribes to log lines until ctx is cancelled.
// It returns nil when logging is not initialised.
func NewListener(ctx context.Context) *Listener {
	l := current()
	if l == nil {
		return nil
	}
	return pubsub.NewContinuousListener(ctx, l.broker)
}
