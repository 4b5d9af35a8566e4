package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

// Level is the minimum severity a logger will emit.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level. Unknown values default to info.
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

type implLogger struct {
	out   *log.Logger
	level Level
}

// New creates a Logger writing to stdout at the given level.
func New(level string) Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter creates a Logger with a custom destination, mainly for tests.
func NewWithWriter(w io.Writer, level string) Logger {
	return &implLogger{
		out:   log.New(w, "", log.LstdFlags),
		level: ParseLevel(level),
	}
}

func (l *implLogger) emit(level Level, tag, msg string, args []interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf(tag+" "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.emit(LevelDebug, "[DEBUG]", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.emit(LevelInfo, "[INFO]", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.emit(LevelWarn, "[WARN]", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.emit(LevelError, "[ERROR]", msg, args)
}
