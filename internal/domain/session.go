package domain

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	m "gooze.dev/pkg/snake/internal/model"
)

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithSessionID overrides the generated session ID.
func WithSessionID(id string) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

// WithNow sets the time source used to stamp journal events.
func WithNow(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// Session owns the state of one play-through. Every exported method runs
// under a single lock, so each tick is one atomic read-modify-write no matter
// which goroutine drives it. Once lost, the state is frozen.
type Session struct {
	mu sync.Mutex

	id       string
	settings m.Settings
	spawner  FruitSpawner
	journal  Journal
	now      func() time.Time

	snake     []m.Position
	fruits    []m.Position
	direction m.Direction
	heading   m.Direction
	score     int
	period    time.Duration
	lost      bool
	cause     m.LossCause
	ticks     m.TickCounts

	done chan struct{}
}

// NewSession creates a fresh session heading right with the initial snake.
func NewSession(settings m.Settings, spawner FruitSpawner, journal Journal, options ...SessionOption) *Session {
	if journal == nil {
		journal = DiscardJournal()
	}

	s := &Session{
		id:        uuid.NewString(),
		settings:  settings,
		spawner:   spawner,
		journal:   journal,
		now:       time.Now,
		snake:     InitialSnake(),
		fruits:    []m.Position{},
		direction: m.Right,
		heading:   m.Right,
		period:    settings.BasePeriod,
		done:      make(chan struct{}),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Settings returns the settings the session was created with.
func (s *Session) Settings() m.Settings {
	return s.settings
}

// Done is closed once the session is lost.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Lost reports whether the session has ended.
func (s *Session) Lost() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lost
}

// Period returns the current snake-advance period.
func (s *Session) Period() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.period
}

// Turn requests a new direction. The request is arbitrated against the
// direction of the last advance, so two quick turns can never fold the snake
// back onto itself. A rejected request leaves the committed direction as is.
// It returns the committed direction.
func (s *Session) Turn(requested m.Direction) m.Direction {
	defer s.flush()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lost {
		return s.direction
	}

	if Resolve(s.heading, requested) != requested {
		return s.direction
	}

	if requested != s.direction {
		s.direction = requested
		s.record(m.EventTurn, m.Position{})
	}

	return s.direction
}

// AdvanceTick moves the snake one step and evaluates loss.
// It returns false once the session is lost.
func (s *Session) AdvanceTick() bool {
	defer s.flush()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lost {
		return false
	}

	s.snake = Advance(s.snake, s.direction)
	s.heading = s.direction
	s.ticks.Advance++
	s.record(m.EventAdvance, m.Position{})

	return s.evaluateLoss()
}

// CheckTick consumes a fruit under the head, if any, then re-evaluates loss.
// Eating scores a point, speeds the snake up and grows it by one segment.
// It returns false once the session is lost.
func (s *Session) CheckTick() bool {
	defer s.flush()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lost {
		return false
	}

	s.ticks.Check++

	if eaten, ok := FindEaten(s.snake, s.fruits); ok {
		s.score++
		s.speedUp()
		s.snake = Grow(s.snake, s.direction)
		s.fruits = Consume(s.fruits, eaten)
		s.record(m.EventEat, eaten)

		slog.Debug("Fruit eaten", "session", s.id, "fruit", eaten, "score", s.score, "period", s.period)
	}

	return s.evaluateLoss()
}

// SpawnTick adds one fruit to the board. It returns false once the session is lost.
func (s *Session) SpawnTick() bool {
	defer s.flush()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lost {
		return false
	}

	fruit := s.spawner.Spawn()
	s.fruits = append(s.fruits, fruit)
	s.ticks.Spawn++
	s.record(m.EventSpawn, fruit)

	return true
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() m.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return m.Snapshot{
		SessionID: s.id,
		BoardSize: s.settings.BoardSize,
		Snake:     slices.Clone(s.snake),
		Fruits:    slices.Clone(s.fruits),
		Direction: s.direction,
		Score:     s.score,
		Lost:      s.lost,
		Cause:     s.cause,
		Period:    s.period,
		Ticks:     s.ticks,
	}
}

// speedUp shortens the advance period by one step, never below the floor.
func (s *Session) speedUp() {
	if s.period <= s.settings.MinPeriod {
		return
	}

	s.period = max(s.period-s.settings.SpeedStep, s.settings.MinPeriod)
}

func (s *Session) evaluateLoss() bool {
	cause := LossCauseOf(s.snake, s.settings.BoardSize)
	if cause == m.CauseNone {
		return true
	}

	s.lost = true
	s.cause = cause
	s.record(m.EventLoss, m.Position{})
	close(s.done)

	slog.Info("Session lost", "session", s.id, "cause", cause, "score", s.score, "head", s.snake[0])

	return false
}

func (s *Session) record(kind m.EventKind, target m.Position) {
	event := m.Event{
		Kind:      kind,
		At:        s.now(),
		Target:    target,
		Direction: s.direction,
		Length:    len(s.snake),
		Score:     s.score,
		Period:    s.period,
		Cause:     s.cause,
	}

	if len(s.snake) > 0 {
		event.Head = s.snake[0]
	}

	if err := s.journal.Record(event); err != nil {
		slog.Warn("Failed to record event", "session", s.id, "kind", kind, "error", err)
	}
}

// flush writes buffered events out. Callers must not hold s.mu.
func (s *Session) flush() {
	if err := s.journal.Flush(); err != nil {
		slog.Warn("Failed to flush journal", "session", s.id, "error", err)
	}
}
