package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/runoshun/launchpad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLogger_GameScoped(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Info("abc", "launch", "test message")

	// Verify global log
	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[game-abc]")
	assert.Contains(t, string(content), "[launch]")
	assert.Contains(t, string(content), "test message")

	// Verify game log
	gameContent, err := os.ReadFile(domain.GameLogPath(dataDir, "abc"))
	require.NoError(t, err)
	assert.Equal(t, string(content), string(gameContent))
}

func TestLogger_GlobalLogOnly(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Execute with no game
	logger.Info("", "scan", "global message")

	// Verify
	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[global]")

	entries, err := os.ReadDir(domain.LogsDir(dataDir))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLogger_LevelFiltering(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Debug("1", "launch", "debug message")
	logger.Info("1", "launch", "info message")
	logger.Warn("1", "launch", "warn message")
	logger.Error("1", "launch", "error message")

	// Verify
	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "[WARN]")
	assert.Contains(t, string(content), "[ERROR]")
}

func TestLogger_DisabledWhenEmptyDataDir(t *testing.T) {
	logger := New("", slog.LevelDebug)
	defer func() { _ = logger.Close() }()

	// Should not panic or write anywhere
	logger.Info("1", "launch", "test message")
	logger.Error("", "launch", "test message")
}

func TestLogger_LogFormat(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Info("42", "usecase", `game added: "Metroid"`)

	// Verify format: [timestamp] [INFO] [game-42] [usecase] message
	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[INFO\] \[game-42\] \[usecase\] game added: "Metroid"$`, lines[0])
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.Info(string(rune('a'+i%3)), "launch", "message")
		}(i)
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(content)), "\n"), 10)
	assert.FileExists(t, filepath.Join(domain.LogsDir(dataDir), "game-a.log"))
}
