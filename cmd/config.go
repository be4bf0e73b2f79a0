package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"bladegen.dev/pkg/bladegen/internal/domain"
	"bladegen.dev/pkg/bladegen/pkg"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "bladegen"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	recursiveFlagName = "recursive"
	rootFlagName      = "root"
	parallelFlagName  = "parallel"
	logFileFlagName   = "log-file"
	verboseFlagName   = "verbose"

	workspaceRootKey  = "workspace.root"
	thirdpartyDirKey  = "workspace.thirdparty_dir"
	parallelConfigKey = "generate.parallel"
	rulesFileKey      = "rules.file"

	defaultWorkspaceRoot = "."
	defaultThirdpartyDir = "thirdparty"
	defaultParallel      = 1

	envPrefix = "BLADEGEN"

	logFilenameKey     = "log.filename"
	logLevelKey        = "log.level"
	logConsoleLevelKey = "log.console_level"
	logVerboseKey      = "log.verbose"
	logMaxSizeKey      = "log.max_size"
	logMaxBackupsKey   = "log.max_backups"
	logMaxAgeKey       = "log.max_age"
	logCompressKey     = "log.compress"

	defaultLogFilename     = "logs/gen_blade_build.log"
	defaultLogLevel        = "debug"
	defaultLogConsoleLevel = "warn"
	defaultLogVerbose      = false
	defaultLogMaxSize      = 10
	defaultLogMaxBackups   = 3
	defaultLogMaxAge       = 28
	defaultLogCompress     = true
)

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(workspaceRootKey, defaultWorkspaceRoot)
	viper.SetDefault(thirdpartyDirKey, defaultThirdpartyDir)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(rulesFileKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logConsoleLevelKey, defaultLogConsoleLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		fmt.Fprintf(os.Stderr, "ignoring config file %s: %v\n", viper.ConfigFileUsed(), err)
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger builds the process logger: a colored console sink at WARN
// (DEBUG when verbose) and a rotating file sink at DEBUG.
// The returned function closes the file sink.
func configureLogger(console io.Writer, logPath string, verbose bool) (*slog.Logger, func()) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	fileHandler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     parseSlogLevel(viper.GetString(logLevelKey), slog.LevelDebug),
	})

	consoleLevel := parseSlogLevel(viper.GetString(logConsoleLevelKey), slog.LevelWarn)
	if verbose {
		consoleLevel = slog.LevelDebug
	}

	consoleHandler := charmlog.NewWithOptions(console, charmlog.Options{
		Level:        charmlog.Level(consoleLevel),
		ReportCaller: true,
	})
	consoleHandler.SetStyles(consoleStyles())

	logger := slog.New(pkg.NewTeeHandler(consoleHandler, fileHandler))
	logger.Info("Log will be printed to file", "path", logPath)

	return logger, func() {
		if err := logWriter.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "close log file %s: %v\n", logPath, err)
		}
	}
}

// consoleStyles colors console levels: debug white, info green, warn
// yellow, error red.
func consoleStyles() *charmlog.Styles {
	styles := charmlog.DefaultStyles()
	styles.Levels[charmlog.DebugLevel] = levelStyle("DEBUG", "15")
	styles.Levels[charmlog.InfoLevel] = levelStyle("INFO", "10")
	styles.Levels[charmlog.WarnLevel] = levelStyle("WARN", "11")
	styles.Levels[charmlog.ErrorLevel] = levelStyle("ERROR", "9")

	return styles
}

func levelStyle(label, color string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Bold(true).
		Foreground(lipgloss.Color(color))
}

// loadRules returns the built-in rule tables, or those of path when set.
func loadRules(path string) (*domain.Rules, error) {
	if strings.TrimSpace(path) == "" {
		return domain.DefaultRules()
	}

	// #nosec G304 - rules file is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	return domain.ParseRules(data)
}
