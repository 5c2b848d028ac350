// Package domain contains the snake rules, sessions and their clocks.
package domain

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"gooze.dev/pkg/snake/internal/adapter"
	m "gooze.dev/pkg/snake/internal/model"
)

// ErrNoSession is returned when an operation needs a session and none was started.
var ErrNoSession = errors.New("no session started")

// SimulateArgs describes a headless run in virtual time.
type SimulateArgs struct {
	Settings m.Settings
	Moves    []m.Move
	// Duration bounds the run. Zero or less runs until the snake is lost.
	Duration time.Duration
}

// SimulateResult is the outcome of a headless run.
type SimulateResult struct {
	Snapshot m.Snapshot
	Summary  m.Summary
	Elapsed  time.Duration
}

// Game manages the lifecycle of sessions: at most one runs at a time, and
// starting a new one tears the previous one down first.
type Game interface {
	Start(ctx context.Context, settings m.Settings) (*Session, error)
	Stop()
	Close() error
	Turn(direction m.Direction) (m.Direction, error)
	Snapshot() (m.Snapshot, error)
	Summary() (m.Summary, error)
	Simulate(ctx context.Context, args SimulateArgs) (SimulateResult, error)
}

type game struct {
	mu         sync.Mutex
	journalDir string
	newJournal func(dir, sessionID string, started time.Time) (Journal, error)

	session *Session
	journal Journal
	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewGame creates a Game whose session journals live in journalDir
// (the system temp dir when empty).
func NewGame(journalDir string) Game {
	return &game{journalDir: journalDir, newJournal: NewJournal}
}

func (g *game) Start(ctx context.Context, settings m.Settings) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.teardown()

	if err := g.closeJournal(); err != nil {
		return nil, err
	}

	session, journal, err := g.newSession(settings, time.Now())
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	clock := NewRealtimeClock(session)

	go func() {
		defer close(stopped)

		if err := clock.Run(runCtx); err != nil {
			slog.Error("Session clock failed", "session", session.ID(), "error", err)
		}
	}()

	g.session = session
	g.journal = journal
	g.cancel = cancel
	g.stopped = stopped

	slog.Info("Session started", "session", session.ID(), "board", settings.BoardSize, "period", settings.BasePeriod)

	return session, nil
}

// Stop cancels the three schedules of the running session and waits for them.
// The session state and journal stay readable until the next Start or Close.
func (g *game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.teardown()
}

func (g *game) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.teardown()

	return g.closeJournal()
}

func (g *game) Turn(direction m.Direction) (m.Direction, error) {
	session, err := g.current()
	if err != nil {
		return direction, err
	}

	return session.Turn(direction), nil
}

func (g *game) Snapshot() (m.Snapshot, error) {
	session, err := g.current()
	if err != nil {
		return m.Snapshot{}, err
	}

	return session.Snapshot(), nil
}

func (g *game) Summary() (m.Summary, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.journal == nil {
		return m.Summary{}, ErrNoSession
	}

	return g.journal.Summary()
}

// Simulate plays a session in virtual time, applying each move at its
// timestamp. It does not touch the realtime session.
func (g *game) Simulate(ctx context.Context, args SimulateArgs) (SimulateResult, error) {
	if err := args.Settings.Validate(); err != nil {
		return SimulateResult{}, err
	}

	// Journal timestamps follow virtual time so summaries are reproducible.
	var clock *VirtualClock

	epoch := time.Unix(0, 0).UTC()
	virtualNow := WithNow(func() time.Time { return epoch.Add(clock.Now()) })

	session, journal, err := g.newSession(args.Settings, epoch, virtualNow)
	if err != nil {
		return SimulateResult{}, err
	}

	defer func() {
		if err := journal.Close(); err != nil {
			slog.Error("Failed to close journal", "session", session.ID(), "error", err)
		}
	}()

	clock = NewVirtualClock(session)

	if err := replay(ctx, clock, session, args); err != nil {
		return SimulateResult{}, err
	}

	summary, err := journal.Summary()
	if err != nil {
		slog.Error("Failed to summarize simulation", "session", session.ID(), "error", err)
		return SimulateResult{}, fmt.Errorf("summarize: %w", err)
	}

	// A bounded run keeps going after its last event.
	summary.Duration = clock.Now()

	return SimulateResult{
		Snapshot: session.Snapshot(),
		Summary:  summary,
		Elapsed:  clock.Now(),
	}, nil
}

func replay(ctx context.Context, clock *VirtualClock, session *Session, args SimulateArgs) error {
	moves := slices.Clone(args.Moves)
	slices.SortStableFunc(moves, func(a, b m.Move) int {
		return cmp.Compare(a.At, b.At)
	})

	bounded := args.Duration > 0

	for _, move := range moves {
		if err := ctx.Err(); err != nil {
			return err
		}

		if bounded && move.At > args.Duration {
			break
		}

		if !clock.RunFor(move.At - clock.Now()) {
			return nil
		}

		session.Turn(move.Direction)
	}

	if !bounded {
		return clock.Run(ctx)
	}

	clock.RunFor(args.Duration - clock.Now())

	return nil
}

func (g *game) newSession(settings m.Settings, started time.Time, options ...SessionOption) (*Session, Journal, error) {
	id := uuid.NewString()

	journal, err := g.newJournal(g.journalDir, id, started)
	if err != nil {
		return nil, nil, err
	}

	spawner := NewFruitSpawner(adapter.NewSeededRandomSource(settings.Seed), settings.BoardSize)
	session := NewSession(settings, spawner, journal, append([]SessionOption{WithSessionID(id)}, options...)...)

	return session, journal, nil
}

func (g *game) current() (*Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session == nil {
		return nil, ErrNoSession
	}

	return g.session, nil
}

// teardown must be called with g.mu held.
func (g *game) teardown() {
	if g.cancel == nil {
		return
	}

	g.cancel()
	<-g.stopped

	slog.Debug("Session stopped", "session", g.session.ID())

	g.cancel = nil
	g.stopped = nil
}

// closeJournal must be called with g.mu held.
func (g *game) closeJournal() error {
	if g.journal == nil {
		return nil
	}

	err := g.journal.Close()
	g.journal = nil

	if err != nil {
		slog.Error("Failed to close journal", "error", err)
		return fmt.Errorf("close journal: %w", err)
	}

	return nil
}
