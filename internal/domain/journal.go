package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	m "gooze.dev/pkg/snake/internal/model"
	pkg "gooze.dev/pkg/snake/pkg"
)

// Journal records the events of one session. Record only buffers the event;
// Flush moves the buffered events to durable storage.
type Journal interface {
	Record(event m.Event) error
	Flush() error
	Summary() (m.Summary, error)
	Close() error
}

type spillJournal struct {
	mu        sync.Mutex
	sessionID string
	started   time.Time
	seq       uint64
	pending   []m.Event
	closed    bool

	// flushMu keeps batches in sequence order on the spill.
	flushMu sync.Mutex
	spill   pkg.Spill[m.Event]
}

// NewJournal creates a journal backed by a scratch file in dir. Durations are
// measured from started.
func NewJournal(dir, sessionID string, started time.Time) (Journal, error) {
	spill, err := pkg.NewSpill[m.Event](dir)
	if err != nil {
		slog.Error("Failed to create journal", "session", sessionID, "error", err)
		return nil, fmt.Errorf("create journal: %w", err)
	}

	return &spillJournal{sessionID: sessionID, started: started, spill: spill}, nil
}

func (j *spillJournal) Record(event m.Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return pkg.ErrSpillClosed
	}

	j.seq++
	event.Seq = j.seq
	j.pending = append(j.pending, event)

	return nil
}

func (j *spillJournal) Flush() error {
	j.flushMu.Lock()
	defer j.flushMu.Unlock()

	return j.flushLocked()
}

func (j *spillJournal) flushLocked() error {
	j.mu.Lock()
	batch := j.pending
	j.pending = nil
	j.mu.Unlock()

	for i, event := range batch {
		if err := j.spill.Append(event); err != nil {
			slog.Error("Failed to flush journal", "session", j.sessionID, "dropped", len(batch)-i, "error", err)
			return fmt.Errorf("flush journal: %w", err)
		}
	}

	return nil
}

func (j *spillJournal) Summary() (m.Summary, error) {
	j.flushMu.Lock()
	defer j.flushMu.Unlock()

	if err := j.flushLocked(); err != nil {
		return m.Summary{}, err
	}

	summary := m.Summary{SessionID: j.sessionID}
	seen := false
	last := m.Event{}

	err := j.spill.Range(func(_ uint64, event m.Event) error {
		seen = true
		last = event
		foldEvent(&summary, event)

		return nil
	})
	if err != nil {
		return m.Summary{}, fmt.Errorf("read journal: %w", err)
	}

	if seen && last.At.After(j.started) {
		summary.Duration = last.At.Sub(j.started)
	}

	return summary, nil
}

func (j *spillJournal) Close() error {
	j.flushMu.Lock()
	defer j.flushMu.Unlock()

	flushErr := j.flushLocked()

	j.mu.Lock()
	j.closed = true
	j.mu.Unlock()

	return errors.Join(flushErr, j.spill.Close())
}

func foldEvent(summary *m.Summary, event m.Event) {
	switch event.Kind {
	case m.EventAdvance:
		summary.Advances++
	case m.EventTurn:
		summary.Turns++
	case m.EventSpawn:
		summary.Spawned++
	case m.EventEat:
		summary.Eaten++
	case m.EventLoss:
		summary.Lost = true
		summary.Cause = event.Cause
	}

	summary.Score = event.Score
	summary.FinalPeriod = event.Period

	if event.Length > summary.MaxLength {
		summary.MaxLength = event.Length
	}
}

type discardJournal struct{}

// DiscardJournal returns a journal that drops every event.
func DiscardJournal() Journal {
	return discardJournal{}
}

func (discardJournal) Record(m.Event) error        { return nil }
func (discardJournal) Flush() error                { return nil }
func (discardJournal) Summary() (m.Summary, error) { return m.Summary{}, nil }
func (discardJournal) Close() error                { return nil }
