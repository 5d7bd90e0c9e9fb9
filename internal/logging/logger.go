// Package logging wraps log/slog for termfolio. The terminal belongs to the
// TUI, so logs only go to a rotated file and are dropped when no file is set.
package logging

import (
	"io"
	"log/slog"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFormat selects the slog handler.
type LogFormat string

const (
	FormatText LogFormat = "text"
	FormatJSON LogFormat = "json"
)

// Config holds logger settings.
type Config struct {
	// FilePath is the log file; empty disables logging.
	FilePath   string
	Level      slog.Level
	Format     LogFormat
	MaxSizeMB  int
	MaxBackups int
}

// Logger wraps slog.Logger.
type Logger struct {
	logger *slog.Logger
}

var (
	mu         sync.RWMutex
	current    *Logger
	rotator    *lumberjack.Logger
	noopLogger = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// Init replaces the global logger. An empty FilePath installs the noop logger.
func Init(config Config) error {
	mu.Lock()
	defer mu.Unlock()

	closeRotator()

	if config.FilePath == "" {
		current = noopLogger
		return nil
	}

	rotator = &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{Level: config.Level}
	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(rotator, opts)
	default:
		handler = slog.NewTextHandler(rotator, opts)
	}

	current = &Logger{logger: slog.New(handler).With("app", "termfolio")}
	return nil
}

// Get returns the global logger, or the noop logger before Init.
func Get() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return noopLogger
	}
	return current
}

// Shutdown flushes and closes the log file and reverts to the noop logger.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeRotator()
	current = noopLogger
	return err
}

func closeRotator() error {
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	return err
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// With returns a child logger carrying the given attributes.
func (l *Logger) With(args ...any) *Logger {
	if l == noopLogger {
		return l
	}
	return &Logger{logger: l.logger.With(args...)}
}

// IsEnabled reports whether l writes anywhere.
func (l *Logger) IsEnabled() bool {
	return l != noopLogger
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any) { Get().Info(msg, args...) }
func Warn(msg string, args ...any) { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// IsEnabled reports whether the global logger writes anywhere.
func IsEnabled() bool {
	return Get().IsEnabled()
}

// ParseLevel maps a flag value to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat maps a flag value to a LogFormat, defaulting to text.
func ParseFormat(format string) LogFormat {
	if format == string(FormatJSON) {
		return FormatJSON
	}
	return FormatText
}
