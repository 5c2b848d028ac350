package cmd

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/snake/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "snake", configBaseName)
	assert.Equal(t, "snake.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "board.size", boardSizeKey)
	assert.Equal(t, "speed.base", basePeriodKey)
	assert.Equal(t, "sim.moves", simMovesKey)
	assert.Equal(t, "output.format", formatKey)
	assert.Equal(t, ".snake.log", defaultLogFilename)
	assert.Equal(t, "SNAKE", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestSettingsFromConfig_Defaults(t *testing.T) {
	newRootCmd()

	settings, err := settingsFromConfig()
	require.NoError(t, err)
	assert.Equal(t, m.DefaultSettings(), settings)
}

func TestSettingsFromConfig_Env(t *testing.T) {
	newRootCmd()
	t.Setenv("SNAKE_SPEED_STEP", "10ms")
	t.Setenv("SNAKE_TICK_FRUIT", "500ms")

	settings, err := settingsFromConfig()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, settings.SpeedStep)
	assert.Equal(t, 500*time.Millisecond, settings.FruitPeriod)
}

func TestSettingsFromConfig_Invalid(t *testing.T) {
	newRootCmd()
	t.Setenv("SNAKE_SPEED_MIN", "0s")

	_, err := settingsFromConfig()
	require.ErrorIs(t, err, m.ErrInvalidSettings)
}

func TestParseMoves(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    []m.Move
		wantErr bool
	}{
		{"empty", nil, []m.Move{}, false},
		{
			"names and short forms",
			[]string{"700ms:down", " 2s:L ", "0s:up"},
			[]m.Move{
				{At: 700 * time.Millisecond, Direction: m.Down},
				{At: 2 * time.Second, Direction: m.Left},
				{At: 0, Direction: m.Up},
			},
			false,
		},
		{"missing separator", []string{"700ms"}, nil, true},
		{"bad offset", []string{"soon:down"}, nil, true},
		{"negative offset", []string{"-1s:down"}, nil, true},
		{"bad direction", []string{"1s:sideways"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMoves(tt.values)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestReadConfig_MissingFileIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())

	found, err := readConfig()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReadConfig_ExistingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(configFileName, []byte("version: 1\n"), 0o644))

	found, err := readConfig()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, currentConfigVersion, viper.GetInt(configVersionKey))
}

func TestReadConfig_MalformedFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(configFileName, []byte("board: [\n"), 0o644))

	found, err := readConfig()
	require.Error(t, err)
	assert.False(t, found)
}
