package controller

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gooze.dev/pkg/snake/internal/domain"
	m "gooze.dev/pkg/snake/internal/model"
	"gopkg.in/yaml.v3"
)

// SimpleUI implements UI using cobra Command's output. It cannot read keys,
// so a session it watches runs until the snake is lost.
type SimpleUI struct {
	cmd    *cobra.Command
	game   domain.Game
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, game domain.Game) *SimpleUI {
	return &SimpleUI{cmd: cmd, game: game, config: newStartConfig()}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.config = newStartConfig(options...)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait polls the running session until it is lost or ctx is done, then
// prints the last board. It returns at once outside play mode.
func (s *SimpleUI) Wait(ctx context.Context) {
	if s.config.mode != ModePlay {
		return
	}

	ticker := time.NewTicker(s.config.refresh)
	defer ticker.Stop()

	for {
		snapshot, err := s.game.Snapshot()
		if err != nil {
			slog.Debug("Nothing to wait for", "error", err)
			return
		}

		if snapshot.Lost {
			_ = s.DisplaySnapshot(ctx, snapshot)
			return
		}

		select {
		case <-ctx.Done():
			_ = s.DisplaySnapshot(context.WithoutCancel(ctx), snapshot)
			return
		case <-ticker.C:
		}
	}
}

// DisplaySnapshot prints the board as text with a status line.
func (s *SimpleUI) DisplaySnapshot(ctx context.Context, snapshot m.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s%s\n", renderBoard(snapshot, textCell), statusLine(snapshot))

	return nil
}

// DisplaySummary prints the session summary as a table, or as YAML.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.config.format == FormatYAML {
		out, err := yaml.Marshal(summary)
		if err != nil {
			slog.Error("Failed to encode summary", "session", summary.SessionID, "error", err)
			return fmt.Errorf("encode summary: %w", err)
		}

		s.printf("%s", out)

		return nil
	}

	s.printf("\n%s", renderSummaryTable(summary))

	return nil
}

func renderSummaryTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Session", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	outcome := "running"
	if summary.Lost {
		outcome = string(summary.Cause)
	}

	table.AppendBulk([][]string{
		{"Score", strconv.Itoa(summary.Score)},
		{"Advances", strconv.Itoa(summary.Advances)},
		{"Turns", strconv.Itoa(summary.Turns)},
		{"Fruit spawned", strconv.Itoa(summary.Spawned)},
		{"Fruit eaten", strconv.Itoa(summary.Eaten)},
		{"Max length", strconv.Itoa(summary.MaxLength)},
		{"Final period", summary.FinalPeriod.String()},
		{"Duration", summary.Duration.String()},
		{"Outcome", outcome},
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
