package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LogLevel represents logging verbosity levels.
type LogLevel int

// Log level constants.
const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelDebug
)

// ParseLogLevel parses a log level string.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return LogLevelOff
	case "error":
		return LogLevelError
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelError
	}
}

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelOff:
		return "off"
	case LogLevelError:
		return "error"
	case LogLevelDebug:
		return "debug"
	default:
		return "error"
	}
}

// Logger records share-admission and recovery outcomes to a file. It never
// logs secrets, passphrases, derived keys, or share payloads - only titles,
// counts, and failure reasons.
type Logger struct {
	mu       sync.Mutex
	level    LogLevel
	file     *os.File
	filePath string
	slogger  *slog.Logger
}

// NewLogger creates a new logger. A LogLevelOff level or empty filePath
// disables logging entirely: no file is opened.
func NewLogger(level LogLevel, filePath string) (*Logger, error) {
	logger := &Logger{
		level:    level,
		filePath: filePath,
	}

	if level == LogLevelOff || filePath == "" {
		return logger, nil
	}

	if strings.HasPrefix(filePath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		filePath = filepath.Join(home, filePath[2:])
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}

	// #nosec G304 -- log file path is from validated config
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	logger.file = f
	logger.filePath = filePath
	logger.slogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: logger.slogLevel()}))

	return logger, nil
}

// slogLevel converts LogLevel to slog.Level.
func (l *Logger) slogLevel() slog.Level {
	switch l.level {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelOff, LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelError
	}
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// SetLevel changes the log level.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current log level.
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// ShareSplit records that a split of title into total shares (threshold
// needed to recover) was attempted, and whether it succeeded.
func (l *Logger) ShareSplit(title string, total, threshold int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.slogger == nil {
		return
	}

	if err != nil {
		if l.level < LogLevelError {
			return
		}
		l.slogger.LogAttrs(context.Background(), slog.LevelError, "split failed",
			slog.String("title", title),
			slog.Int("total", total),
			slog.Int("threshold", threshold),
			slog.String("error", err.Error()),
		)
		return
	}

	if l.level < LogLevelDebug {
		return
	}
	l.slogger.LogAttrs(context.Background(), slog.LevelDebug, "split succeeded",
		slog.String("title", title),
		slog.Int("total", total),
		slog.Int("threshold", threshold),
	)
}

// ShareRejected records that a share offered during combine was rejected,
// and why. Never logs the share payload itself.
func (l *Logger) ShareRejected(title, reason string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.slogger == nil || l.level < LogLevelDebug {
		return
	}
	l.slogger.LogAttrs(context.Background(), slog.LevelDebug, "share rejected",
		slog.String("title", title),
		slog.String("reason", reason),
	)
}

// Recovery records that recovering title was attempted, and whether it
// succeeded. Never logs the passphrase or the recovered secret.
func (l *Logger) Recovery(title string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.slogger == nil {
		return
	}

	if err != nil {
		if l.level < LogLevelError {
			return
		}
		l.slogger.LogAttrs(context.Background(), slog.LevelError, "recovery failed",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return
	}

	if l.level < LogLevelDebug {
		return
	}
	l.slogger.LogAttrs(context.Background(), slog.LevelDebug, "recovery succeeded",
		slog.String("title", title),
	)
}

// NullLogger returns a logger that discards all output.
func NullLogger() *Logger {
	return &Logger{level: LogLevelOff}
}
