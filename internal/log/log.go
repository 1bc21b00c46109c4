// Package log provides structured logging for the wiki TUI.
// Output goes to a file because the terminal belongs to Bubble Tea; logging
// stays off unless --debug or WIKI_DEBUG enables it.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

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
	CatConfig  Category = "config"  // configuration loading
	CatPrefs   Category = "prefs"   // preference store reads and writes
	CatProfile Category = "profile" // page content loading
	CatWatcher Category = "watcher" // profile file watcher
	CatUI      Category = "ui"      // view state and rendering
)

// EnvDebug enables logging when set to a non-empty value.
const EnvDebug = "WIKI_DEBUG"

type logger struct {
	mu       sync.Mutex
	writer   io.Writer
	closer   io.Closer
	minLevel Level
	now      func() time.Time
}

var (
	mu      sync.Mutex
	current *logger
)

// Init opens path through tea.LogToFile and routes all log calls there.
// The returned cleanup closes the file.
func Init(path string) (func(), error) {
	f, err := tea.LogToFile(path, "wiki")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	install(&logger{writer: f, closer: f, minLevel: LevelDebug, now: time.Now})
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if current != nil && current.closer != nil {
			_ = current.closer.Close()
		}
		current = nil
	}, nil
}

// SetOutput routes log entries to w. Passing nil disables logging.
func SetOutput(w io.Writer) {
	if w == nil {
		install(nil)
		return
	}
	install(&logger{writer: w, minLevel: LevelDebug, now: time.Now})
}

// Enabled reports whether debug logging was requested via flag or env.
func Enabled(flag bool) bool {
	return flag || os.Getenv(EnvDebug) != ""
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	if current != nil {
		current.minLevel = level
	}
}

func install(l *logger) {
	mu.Lock()
	defer mu.Unlock()
	current = l
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

// ErrorErr logs msg at error level with err attached as a field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	mu.Lock()
	l := current
	mu.Unlock()
	if l == nil || level < l.minLevel {
		return
	}

	// 2026-10-16T10:45:00 [WARN] [prefs] message key=value
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", l.now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.writer, b.String())
}
