package model

import (
	"errors"
	"fmt"
	"time"
)

// Defaults for a new session.
const (
	DefaultBoardSize   = 30
	DefaultBasePeriod  = 600 * time.Millisecond
	DefaultMinPeriod   = 100 * time.Millisecond
	DefaultSpeedStep   = 30 * time.Millisecond
	DefaultCheckPeriod = 200 * time.Millisecond
	DefaultFruitPeriod = 2 * time.Second
)

// ErrInvalidSettings is returned when session settings cannot drive a game.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings configures one session.
type Settings struct {
	BoardSize int
	// BasePeriod is the initial snake-advance period.
	BasePeriod time.Duration
	// MinPeriod is the floor the advance period never drops below.
	MinPeriod time.Duration
	// SpeedStep is subtracted from the advance period for every fruit eaten.
	SpeedStep   time.Duration
	CheckPeriod time.Duration
	FruitPeriod time.Duration
	// Seed drives fruit placement. Zero picks a time-based seed.
	Seed uint64
}

// DefaultSettings returns the settings of a standard game.
func DefaultSettings() Settings {
	return Settings{
		BoardSize:   DefaultBoardSize,
		BasePeriod:  DefaultBasePeriod,
		MinPeriod:   DefaultMinPeriod,
		SpeedStep:   DefaultSpeedStep,
		CheckPeriod: DefaultCheckPeriod,
		FruitPeriod: DefaultFruitPeriod,
	}
}

// Validate checks that every period is positive and the board is usable.
func (s Settings) Validate() error {
	switch {
	case s.BoardSize <= 0:
		return fmt.Errorf("%w: board size must be positive, got %d", ErrInvalidSettings, s.BoardSize)
	case s.BasePeriod <= 0:
		return fmt.Errorf("%w: base period must be positive, got %s", ErrInvalidSettings, s.BasePeriod)
	case s.MinPeriod <= 0:
		return fmt.Errorf("%w: min period must be positive, got %s", ErrInvalidSettings, s.MinPeriod)
	case s.MinPeriod > s.BasePeriod:
		return fmt.Errorf("%w: min period %s exceeds base period %s", ErrInvalidSettings, s.MinPeriod, s.BasePeriod)
	case s.SpeedStep < 0:
		return fmt.Errorf("%w: speed step must not be negative, got %s", ErrInvalidSettings, s.SpeedStep)
	case s.CheckPeriod <= 0:
		return fmt.Errorf("%w: check period must be positive, got %s", ErrInvalidSettings, s.CheckPeriod)
	case s.FruitPeriod <= 0:
		return fmt.Errorf("%w: fruit period must be positive, got %s", ErrInvalidSettings, s.FruitPeriod)
	}

	return nil
}
