package model

import "time"

// LossCause tells which rule ended a session.
type LossCause string

const (
	// CauseNone means the session is still running.
	CauseNone LossCause = ""
	// CauseSelfBite means the head ran into another segment.
	CauseSelfBite LossCause = "self-bite"
	// CauseOutOfBounds means the head left the board.
	CauseOutOfBounds LossCause = "out-of-bounds"
)

// CellKind classifies a board cell for rendering.
type CellKind int

const (
	// CellEmpty holds nothing.
	CellEmpty CellKind = iota
	// CellSnake holds a snake segment.
	CellSnake
	// CellFruit holds at least one uneaten fruit.
	CellFruit
)

// TickCounts counts how often each schedule fired.
type TickCounts struct {
	Advance uint64
	Check   uint64
	Spawn   uint64
}

// Snapshot is a read-only copy of a session's state.
type Snapshot struct {
	SessionID string
	BoardSize int
	Snake     []Position
	Fruits    []Position
	Direction Direction
	Score     int
	Lost      bool
	Cause     LossCause
	Period    time.Duration
	Ticks     TickCounts
}

// Head returns the first snake segment.
func (s Snapshot) Head() Position {
	if len(s.Snake) == 0 {
		return Position{}
	}

	return s.Snake[0]
}

// CellAt maps a board cell to what occupies it. Snake segments hide fruit.
func (s Snapshot) CellAt(pos Position) CellKind {
	if Contains(s.Snake, pos) {
		return CellSnake
	}

	if Contains(s.Fruits, pos) {
		return CellFruit
	}

	return CellEmpty
}
