package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantEnabled bool
	}{
		{
			name:        "empty filepath installs noop logger",
			config:      Config{Level: slog.LevelInfo, Format: FormatText},
			wantEnabled: false,
		},
		{
			name: "text file logger",
			config: Config{
				FilePath:   filepath.Join(t.TempDir(), "termfolio.log"),
				Level:      slog.LevelInfo,
				Format:     FormatText,
				MaxSizeMB:  1,
				MaxBackups: 1,
			},
			wantEnabled: true,
		},
		{
			name: "json file logger",
			config: Config{
				FilePath:   filepath.Join(t.TempDir(), "termfolio.json"),
				Level:      slog.LevelDebug,
				Format:     FormatJSON,
				MaxSizeMB:  1,
				MaxBackups: 1,
			},
			wantEnabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, Init(tt.config))
			defer Shutdown()

			assert.Equal(t, tt.wantEnabled, IsEnabled())
			Info("hello", "key", "value")
		})
	}
}

func TestPackageLevelFunctionsWriteToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "termfolio.log")
	require.NoError(t, Init(Config{FilePath: logFile, Level: slog.LevelDebug, Format: FormatJSON, MaxSizeMB: 1}))

	Debug("debug message", "section", "contact")
	Warn("warn message")
	Get().With("component", "toast").Error("error message")
	require.NoError(t, Shutdown())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, `"msg":"debug message"`)
	assert.Contains(t, text, `"component":"toast"`)
	assert.Contains(t, text, `"app":"termfolio"`)
	assert.Equal(t, 3, strings.Count(text, "\n"))
}

func TestShutdownRevertsToNoop(t *testing.T) {
	require.NoError(t, Init(Config{FilePath: filepath.Join(t.TempDir(), "x.log")}))
	require.True(t, IsEnabled())

	require.NoError(t, Shutdown())
	assert.False(t, IsEnabled())
	assert.Same(t, Get(), Get().With("k", "v"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat("yaml"))
}
