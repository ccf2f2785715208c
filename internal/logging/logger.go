package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level orders log severities.
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
	}
	return "INFO"
}

// ParseLevel maps a config string to a Level. Unknown values fall back
// to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is the capability the core logs through.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// New returns a Logger writing pipe-delimited lines at or above min to w.
func New(w io.Writer, min Level) Logger {
	return &lineLogger{w: w, min: min}
}

// NewStderr returns a Logger writing to standard error.
func NewStderr(min Level) Logger {
	return New(os.Stderr, min)
}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

type lineLogger struct {
	mu  sync.Mutex
	w   io.Writer
	min Level
}

func (l *lineLogger) logf(lv Level, format string, args ...any) {
	if lv < l.min {
		return
	}
	msg := fmt.Sprintf(format, args...)
	ts := time.Now().Format("2006-01-02 15:04:05")

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s|%s|%s\n", ts, lv, msg)
}

func (l *lineLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *lineLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *lineLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *lineLogger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
