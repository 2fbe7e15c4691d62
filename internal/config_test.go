package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loxrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "log_level: debug\nprompt: \"lox> \"\nmax_call_depth: 50\ncolor: false\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	expected := DefaultConfig()
	expected.LogLevel = "debug"
	expected.Prompt = "lox> "
	expected.MaxCallDepth = 50
	expected.Color = false
	assert.Equal(t, expected, cfg)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "colour: true\n"},
		{"bad level", "log_level: loud\n"},
		{"zero depth", "max_call_depth: 0\n"},
		{"malformed", "prompt: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigDefaultFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, DefaultConfigFile), []byte("prompt: \"$ \"\n"), 0o600))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "$ ", cfg.Prompt)
}

func TestHistoryPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(home, ".lox_history"), cfg.HistoryPath())

	cfg.HistoryFile = "/tmp/hist"
	assert.Equal(t, "/tmp/hist", cfg.HistoryPath())
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxCallDepth = 10

	logger := logrus.New()
	interp := NewInterpreter(&testPrinter{}, cfg.Options(logger)...)
	assert.Equal(t, 10, interp.exec.maxCallDepth)
	assert.Equal(t, logrus.FieldLogger(logger), interp.logger)

	err := interp.Run("fun f(n) { return f(n + 1); } f(0);")
	assert.ErrorIs(t, err, ErrStackOverflow)
}
