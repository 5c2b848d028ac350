// Package controller renders snake sessions to the terminal.
package controller

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gooze.dev/pkg/snake/internal/domain"
	m "gooze.dev/pkg/snake/internal/model"
)

// Output formats accepted by WithFormat.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// DefaultRefresh is how often a running session is redrawn.
const DefaultRefresh = 50 * time.Millisecond

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	// ModeReplay only prints what it is given.
	ModeReplay StartMode = iota
	// ModePlay follows the running session and reads player input.
	ModePlay
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode     StartMode
	settings m.Settings
	refresh  time.Duration
	format   string
}

// WithPlayMode sets the UI to follow the running session.
func WithPlayMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePlay
	}
}

// WithReplayMode sets the UI to print finished results only.
func WithReplayMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReplay
	}
}

// WithSettings sets the settings used when the player restarts.
func WithSettings(settings m.Settings) StartOption {
	return func(c *StartConfig) {
		c.settings = settings
	}
}

// WithRefresh sets the redraw interval.
func WithRefresh(refresh time.Duration) StartOption {
	return func(c *StartConfig) {
		if refresh > 0 {
			c.refresh = refresh
		}
	}
}

// WithFormat selects how summaries are printed: FormatTable or FormatYAML.
func WithFormat(format string) StartOption {
	return func(c *StartConfig) {
		c.format = format
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	config := StartConfig{
		mode:     ModeReplay,
		settings: m.DefaultSettings(),
		refresh:  DefaultRefresh,
		format:   FormatTable,
	}

	for _, option := range options {
		option(&config)
	}

	return config
}

// UI displays sessions of a Game.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait until the session ends or the player quits
	DisplaySnapshot(ctx context.Context, snapshot m.Snapshot) error
	DisplaySummary(ctx context.Context, summary m.Summary) error
}

// NewUI returns the interactive TUI on a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, game domain.Game, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout(), game)
	}

	return NewSimpleUI(cmd, game)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
