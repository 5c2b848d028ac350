package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	require.NoError(t, settings.Validate())
	assert.Equal(t, 30, settings.BoardSize)
	assert.Equal(t, 600*time.Millisecond, settings.BasePeriod)
	assert.Equal(t, 100*time.Millisecond, settings.MinPeriod)
	assert.Equal(t, 30*time.Millisecond, settings.SpeedStep)
	assert.Equal(t, 200*time.Millisecond, settings.CheckPeriod)
	assert.Equal(t, 2*time.Second, settings.FruitPeriod)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"board size", func(s *Settings) { s.BoardSize = 0 }},
		{"base period", func(s *Settings) { s.BasePeriod = 0 }},
		{"min period", func(s *Settings) { s.MinPeriod = -time.Second }},
		{"min above base", func(s *Settings) { s.MinPeriod = s.BasePeriod + time.Millisecond }},
		{"negative step", func(s *Settings) { s.SpeedStep = -time.Millisecond }},
		{"check period", func(s *Settings) { s.CheckPeriod = 0 }},
		{"fruit period", func(s *Settings) { s.FruitPeriod = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSettings()
			tt.modify(&settings)

			require.ErrorIs(t, settings.Validate(), ErrInvalidSettings)
		})
	}
}

func TestSettings_ZeroStepIsValid(t *testing.T) {
	settings := DefaultSettings()
	settings.SpeedStep = 0

	assert.NoError(t, settings.Validate())
}
