package domain

import (
	"sync"
	"time"

	m "gooze.dev/pkg/snake/internal/model"
)

// fixedSpawner hands out positions in order and repeats the last one.
type fixedSpawner struct {
	mu        sync.Mutex
	positions []m.Position
	next      int
}

func (s *fixedSpawner) Spawn() m.Position {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := s.positions[min(s.next, len(s.positions)-1)]
	s.next++

	return pos
}

// recordingJournal keeps Record and Flush apart so tests only see flushed events.
type recordingJournal struct {
	mu      sync.Mutex
	pending []m.Event
	events  []m.Event
	flushes int
	onFlush func()
}

func (j *recordingJournal) Record(event m.Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.pending = append(j.pending, event)

	return nil
}

func (j *recordingJournal) Flush() error {
	j.mu.Lock()
	j.events = append(j.events, j.pending...)
	j.pending = nil
	j.flushes++
	hook := j.onFlush
	j.mu.Unlock()

	if hook != nil {
		hook()
	}

	return nil
}

func (j *recordingJournal) Summary() (m.Summary, error) { return m.Summary{}, nil }
func (j *recordingJournal) Close() error                { return nil }

func (j *recordingJournal) buffered() int {
	j.mu.Lock()
	defer j.mu.Unlock()

	return len(j.pending)
}

func (j *recordingJournal) kinds() []m.EventKind {
	j.mu.Lock()
	defer j.mu.Unlock()

	kinds := make([]m.EventKind, 0, len(j.events))
	for _, event := range j.events {
		kinds = append(kinds, event.Kind)
	}

	return kinds
}

func fastSettings() m.Settings {
	return m.Settings{
		BoardSize:   30,
		BasePeriod:  20 * time.Millisecond,
		MinPeriod:   5 * time.Millisecond,
		SpeedStep:   5 * time.Millisecond,
		CheckPeriod: 5 * time.Millisecond,
		FruitPeriod: 10 * time.Millisecond,
		Seed:        7,
	}
}

func pos(row, column int) m.Position {
	return m.Position{Row: row, Column: column}
}
