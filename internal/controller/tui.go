package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gooze.dev/pkg/snake/internal/adapter"
	"gooze.dev/pkg/snake/internal/domain"
	m "gooze.dev/pkg/snake/internal/model"
	"gopkg.in/yaml.v3"
)

var (
	snakeCell = lipgloss.NewStyle().Background(lipgloss.Color("2")).Render("  ")
	fruitCell = lipgloss.NewStyle().Background(lipgloss.Color("#f24")).Render("  ")
	emptyCell = lipgloss.NewStyle().Background(lipgloss.Color("0")).Render("  ")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	lossStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f24"))
	statusStyle  = lipgloss.NewStyle().Faint(true)
	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1)
)

// TUI implements UI using Bubble Tea. It reads direction keys while a
// session runs and redraws the board on every refresh tick.
type TUI struct {
	output io.Writer
	game   domain.Game
	keys   adapter.KeyMap
	config StartConfig

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, game domain.Game) *TUI {
	return &TUI{
		output: output,
		game:   game,
		keys:   adapter.DefaultKeyMap(),
		config: newStartConfig(),
	}
}

// Start applies options. In play mode it also launches the Bubble Tea
// program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return errors.New("tui already started")
	}

	t.config = newStartConfig(options...)
	if t.config.mode != ModePlay {
		return nil
	}

	model := newSessionModel(ctx, t.game, t.keys, t.config)
	if f, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			model.width = width
			model.height = height
		}
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithContext(ctx), tea.WithAltScreen())
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			slog.Error("TUI program failed", "error", err)
		}
	}()

	t.program = program
	t.done = done

	return nil
}

// Close quits the program and waits for it to restore the terminal.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the player quits or ctx is done.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplaySnapshot pushes the snapshot to the running program, or prints the
// board once when no program runs.
func (t *TUI) DisplaySnapshot(ctx context.Context, snapshot m.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(snapshotMsg(snapshot))
		return nil
	}

	_, err := fmt.Fprint(t.output, renderStyledSnapshot(snapshot), "\n")

	return err
}

// DisplaySummary prints the session summary in a bordered box, or as YAML.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.config.format == FormatYAML {
		out, err := yaml.Marshal(summary)
		if err != nil {
			slog.Error("Failed to encode summary", "session", summary.SessionID, "error", err)
			return fmt.Errorf("encode summary: %w", err)
		}

		_, err = t.output.Write(out)

		return err
	}

	table := strings.TrimRight(renderSummaryTable(summary), "\n")
	_, err := fmt.Fprintln(t.output, summaryStyle.Render(table))

	return err
}

type tickMsg time.Time

type snapshotMsg m.Snapshot

// sessionModel polls the game on every tick and forwards keys to it.
type sessionModel struct {
	ctx      context.Context
	game     domain.Game
	keys     adapter.KeyMap
	help     help.Model
	settings m.Settings
	refresh  time.Duration

	snapshot m.Snapshot
	err      error
	width    int
	height   int
}

func newSessionModel(ctx context.Context, game domain.Game, keys adapter.KeyMap, config StartConfig) sessionModel {
	return sessionModel{
		ctx:      ctx,
		game:     game,
		keys:     keys,
		help:     help.New(),
		settings: config.settings,
		refresh:  config.refresh,
	}
}

func (sm sessionModel) Init() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(time.Now())
	}
}

func (sm sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.height = msg.Height
		sm.help.Width = msg.Width

		return sm, nil
	case tickMsg:
		sm = sm.refreshSnapshot()

		return sm, tea.Tick(sm.refresh, func(now time.Time) tea.Msg {
			return tickMsg(now)
		})
	case snapshotMsg:
		sm.snapshot = m.Snapshot(msg)
		return sm, nil
	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	return sm, nil
}

func (sm sessionModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case sm.keys.IsQuit(msg):
		return sm, tea.Quit
	case sm.keys.IsRestart(msg):
		if _, err := sm.game.Start(sm.ctx, sm.settings); err != nil {
			slog.Error("Failed to restart session", "error", err)
			sm.err = err

			return sm, nil
		}

		sm.err = nil
	default:
		if _, err := sm.game.Turn(sm.keys.DirectionFor(msg)); err != nil {
			slog.Debug("Turn ignored", "key", msg.String(), "error", err)
		}
	}

	return sm.refreshSnapshot(), nil
}

func (sm sessionModel) refreshSnapshot() sessionModel {
	snapshot, err := sm.game.Snapshot()
	if err != nil {
		sm.err = err
		return sm
	}

	sm.snapshot = snapshot

	return sm
}

func (sm sessionModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("snake"))
	b.WriteString("\n\n")

	if sm.snapshot.SessionID != "" {
		b.WriteString(renderStyledSnapshot(sm.snapshot))
	}

	if sm.err != nil {
		b.WriteString(lossStyle.Render(sm.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sm.help.View(sm.keys))
	b.WriteString("\n")

	return b.String()
}

func renderStyledSnapshot(snapshot m.Snapshot) string {
	var b strings.Builder

	b.WriteString(renderBoard(snapshot, styledCell))

	if snapshot.Lost {
		b.WriteString(lossStyle.Render(statusLine(snapshot)))
	} else {
		b.WriteString(statusStyle.Render(statusLine(snapshot)))
	}

	b.WriteString("\n")

	return b.String()
}

func styledCell(kind m.CellKind) string {
	switch kind {
	case m.CellSnake:
		return snakeCell
	case m.CellFruit:
		return fruitCell
	default:
		return emptyCell
	}
}
