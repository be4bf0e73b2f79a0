package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "bladegen.dev/pkg/bladegen/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "bladegen", configBaseName)
	assert.Equal(t, "bladegen.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "recursive", recursiveFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "generate.parallel", parallelConfigKey)
	assert.Equal(t, "workspace.root", workspaceRootKey)
	assert.Equal(t, "workspace.thirdparty_dir", thirdpartyDirKey)
	assert.Equal(t, "thirdparty", defaultThirdpartyDir)
	assert.Equal(t, "logs/gen_blade_build.log", defaultLogFilename)
	assert.Equal(t, 1, defaultParallel)
	assert.Equal(t, "BLADEGEN", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseSlogLevel(tt.in, slog.LevelWarn), tt.in)
	}
}

func TestConfigureLogger(t *testing.T) {
	t.Run("console shows warnings only", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "logs", "gen.log")
		console := &bytes.Buffer{}

		logger, closeLog := configureLogger(console, logPath, false)
		logger.Debug("scanned includes", "file", "a.cc")
		logger.Warn("header folder does not exist", "folder", "nowhere")
		closeLog()

		assert.NotContains(t, console.String(), "scanned includes")
		assert.Contains(t, console.String(), "header folder does not exist")

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "scanned includes")
		assert.Contains(t, string(data), "header folder does not exist")
		assert.Contains(t, string(data), "Log will be printed to file")
	})

	t.Run("verbose console shows debug", func(t *testing.T) {
		console := &bytes.Buffer{}

		logger, closeLog := configureLogger(console, filepath.Join(t.TempDir(), "gen.log"), true)
		logger.Debug("scanned includes")
		closeLog()

		assert.Contains(t, console.String(), "scanned includes")
	})
}

func TestLoadRules(t *testing.T) {
	t.Run("built-in tables", func(t *testing.T) {
		rules, err := loadRules("")
		require.NoError(t, err)

		dep, ok := rules.PseudoFor("zlib.h")
		assert.True(t, ok)
		assert.Equal(t, m.Dep("#z"), dep)
	})

	t.Run("rules file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pseudo:\n  png.h: \"#png\"\n"), 0o600))

		rules, err := loadRules(path)
		require.NoError(t, err)

		_, ok := rules.PseudoFor("zlib.h")
		assert.False(t, ok)

		dep, ok := rules.PseudoFor("png.h")
		assert.True(t, ok)
		assert.Equal(t, m.Dep("#png"), dep)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadRules(filepath.Join(t.TempDir(), "none.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read rules file")
	})
}
