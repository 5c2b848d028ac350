package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	m "gooze.dev/pkg/snake/internal/model"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "snake"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	sizeFlagName     = "size"
	seedFlagName     = "seed"
	formatFlagName   = "format"
	logFileFlagName  = "log-file"
	verboseFlagName  = "verbose"
	speedFlagName    = "speed"
	durationFlagName = "duration"
	moveFlagName     = "move"

	boardSizeKey   = "board.size"
	basePeriodKey  = "speed.base"
	minPeriodKey   = "speed.min"
	speedStepKey   = "speed.step"
	checkPeriodKey = "tick.check"
	fruitPeriodKey = "tick.fruit"
	seedKey        = "seed"
	simDurationKey = "sim.duration"
	simMovesKey    = "sim.moves"
	formatKey      = "output.format"

	defaultSimDuration = time.Minute
	defaultFormat      = "table"

	envPrefix = "SNAKE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".snake.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if _, err := readConfig(); err != nil {
		slog.Warn("Failed to read config", "file", viper.ConfigFileUsed(), "error", err)
	}
}

// readConfig loads the config file into viper. A missing file is not an
// error: it reports false and leaves the defaults in place.
func readConfig() (bool, error) {
	err := viper.ReadInConfig()
	if err == nil {
		return true, nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

func setDefaults() {
	defaults := m.DefaultSettings()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(boardSizeKey, defaults.BoardSize)
	viper.SetDefault(basePeriodKey, defaults.BasePeriod)
	viper.SetDefault(minPeriodKey, defaults.MinPeriod)
	viper.SetDefault(speedStepKey, defaults.SpeedStep)
	viper.SetDefault(checkPeriodKey, defaults.CheckPeriod)
	viper.SetDefault(fruitPeriodKey, defaults.FruitPeriod)
	viper.SetDefault(seedKey, defaults.Seed)
	viper.SetDefault(simDurationKey, defaultSimDuration)
	viper.SetDefault(simMovesKey, []string{})
	viper.SetDefault(formatKey, defaultFormat)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// settingsFromConfig reads session settings from flags, env and config file.
func settingsFromConfig() (m.Settings, error) {
	settings := m.Settings{
		BoardSize:   viper.GetInt(boardSizeKey),
		BasePeriod:  viper.GetDuration(basePeriodKey),
		MinPeriod:   viper.GetDuration(minPeriodKey),
		SpeedStep:   viper.GetDuration(speedStepKey),
		CheckPeriod: viper.GetDuration(checkPeriodKey),
		FruitPeriod: viper.GetDuration(fruitPeriodKey),
		Seed:        viper.GetUint64(seedKey),
	}

	if err := settings.Validate(); err != nil {
		slog.Error("Invalid settings", "error", err)
		return m.Settings{}, err
	}

	return settings, nil
}

// parseMoves reads scripted moves written as OFFSET:DIRECTION (e.g. 700ms:down).
func parseMoves(values []string) ([]m.Move, error) {
	moves := make([]m.Move, 0, len(values))

	for _, value := range values {
		offset, name, ok := strings.Cut(strings.TrimSpace(value), ":")
		if !ok {
			return nil, fmt.Errorf("move %q: expected OFFSET:DIRECTION", value)
		}

		at, err := time.ParseDuration(offset)
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", value, err)
		}

		if at < 0 {
			return nil, fmt.Errorf("move %q: negative offset", value)
		}

		direction, err := m.ParseDirection(name)
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", value, err)
		}

		moves = append(moves, m.Move{At: at, Direction: direction})
	}

	return moves, nil
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

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
