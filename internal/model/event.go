package model

import "time"

// EventKind names a journal entry.
type EventKind string

// Journal event kinds.
const (
	EventAdvance EventKind = "advance"
	EventTurn    EventKind = "turn"
	EventEat     EventKind = "eat"
	EventSpawn   EventKind = "spawn"
	EventLoss    EventKind = "loss"
)

// Event records one state change of a session.
type Event struct {
	Seq       uint64
	Kind      EventKind
	At        time.Time
	Head      Position
	Target    Position // spawned or eaten fruit
	Direction Direction
	Length    int
	Score     int
	Period    time.Duration
	Cause     LossCause
}

// Summary aggregates the events of one session.
type Summary struct {
	SessionID   string        `yaml:"session"`
	Advances    int           `yaml:"advances"`
	Turns       int           `yaml:"turns"`
	Spawned     int           `yaml:"spawned"`
	Eaten       int           `yaml:"eaten"`
	Score       int           `yaml:"score"`
	MaxLength   int           `yaml:"max_length"`
	FinalPeriod time.Duration `yaml:"final_period"`
	Lost        bool          `yaml:"lost"`
	Cause       LossCause     `yaml:"cause,omitempty"`
	Duration    time.Duration `yaml:"duration"`
}

// Move is a scripted direction request at a point in session time.
type Move struct {
	At        time.Duration
	Direction Direction
}
