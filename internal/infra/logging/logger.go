// Package logging provides file-based logging for launchpad.
// It writes to a global log file (<data dir>/logs/launchpad.log) and,
// for messages about a game, to a per-game file (<data dir>/logs/game-<id>.log).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/runoshun/launchpad/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger wraps slog levels with file-based output support.
// Fields are ordered to minimize memory padding.
type Logger struct {
	globalFile *os.File
	gameFiles  map[string]*os.File
	dataDir    string
	mu         sync.Mutex
	level      slog.Level
}

// New creates a new Logger that writes below dataDir.
// If dataDir is empty, logging is disabled.
func New(dataDir string, level slog.Level) *Logger {
	return &Logger{
		dataDir:   dataDir,
		level:     level,
		gameFiles: make(map[string]*os.File),
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openLocked opens path for appending, creating the logs directory.
// The caller must hold l.mu.
func (l *Logger) openLocked(path string) (*os.File, error) {
	if err := os.MkdirAll(domain.LogsDir(l.dataDir), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.globalFile != nil {
		if err := l.globalFile.Close(); err != nil {
			lastErr = err
		}
		l.globalFile = nil
	}
	for id, f := range l.gameFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.gameFiles, id)
	}
	return lastErr
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [game-<id>] [category] message
func formatLog(t time.Time, level slog.Level, gameID, category, msg string) string {
	scope := "global"
	if gameID != "" {
		scope = "game-" + gameID
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		scope,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// log writes an entry to the global log and, if gameID is set, the game's log.
func (l *Logger) log(level slog.Level, gameID, category, msg string) {
	if l.dataDir == "" {
		return // Logging disabled
	}
	if level < l.level {
		return
	}

	entry := formatLog(time.Now(), level, gameID, category, msg)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.globalFile == nil {
		f, err := l.openLocked(domain.GlobalLogPath(l.dataDir))
		if err != nil {
			return
		}
		l.globalFile = f
	}
	_, _ = io.WriteString(l.globalFile, entry)

	if gameID == "" {
		return
	}
	gf, ok := l.gameFiles[gameID]
	if !ok {
		f, err := l.openLocked(domain.GameLogPath(l.dataDir, gameID))
		if err != nil {
			return
		}
		gf = f
		l.gameFiles[gameID] = f
	}
	_, _ = io.WriteString(gf, entry)
}

// Info logs an info message.
func (l *Logger) Info(gameID, category, msg string) {
	l.log(slog.LevelInfo, gameID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(gameID, category, msg string) {
	l.log(slog.LevelDebug, gameID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(gameID, category, msg string) {
	l.log(slog.LevelWarn, gameID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(gameID, category, msg string) {
	l.log(slog.LevelError, gameID, category, msg)
}
