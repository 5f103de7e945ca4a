// Package debuglog provides a small leveled logger for tracing
// parameter and control-surface activity during development.
package debuglog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug is for detailed tracing (per-message MIDI logs).
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
	// LevelOff disables all logging.
	LevelOff
)

// String returns the string representation of the level.
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

// Flags for output formatting.
const (
	FlagTime = 1 << iota // include timestamp
	FlagLevel
	FlagPrefix
)

// DefaultFlags are the default formatting flags.
const DefaultFlags = FlagTime | FlagLevel | FlagPrefix

// Logger writes leveled log messages to an output.
type Logger struct {
	mu     sync.Mutex
	output io.Writer
	level  Level
	prefix string
	flags  int
}

// New creates a new logger instance.
func New(output io.Writer, prefix string, flags int) *Logger {
	return &Logger{
		output: output,
		level:  LevelInfo,
		prefix: prefix,
		flags:  flags,
	}
}

// SetLevel sets the minimum level that will be written.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput redirects the logger, mainly for tests.
func (l *Logger) SetOutput(output io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = output
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level || l.output == nil {
		return
	}

	var b strings.Builder
	if l.flags&FlagTime != 0 {
		b.WriteString(time.Now().Format("15:04:05.000"))
		b.WriteByte(' ')
	}
	if l.flags&FlagLevel != 0 {
		b.WriteString(level.String())
		b.WriteByte(' ')
	}
	if l.flags&FlagPrefix != 0 && l.prefix != "" {
		b.WriteByte('[')
		b.WriteString(l.prefix)
		b.WriteString("] ")
	}
	fmt.Fprintf(&b, format, args...)
	b.WriteByte('\n')

	io.WriteString(l.output, b.String())
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Warnf logs at warn level.
func (l *Logger) Warnf(format string, args ...any) { l.log(LevelWarn, format, args...) }

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, format, args...) }

var (
	defaultLogger *Logger
	once          sync.Once
)

// Default returns the shared logger writing to stderr.
func Default() *Logger {
	once.Do(func() {
		defaultLogger = New(os.Stderr, "paramkit", DefaultFlags)
	})
	return defaultLogger
}
