package domain

import (
	"gooze.dev/pkg/snake/internal/adapter"
	m "gooze.dev/pkg/snake/internal/model"
)

// FruitSpawner picks cells for new fruit.
type FruitSpawner interface {
	Spawn() m.Position
}

type randomFruitSpawner struct {
	random    adapter.RandomSource
	boardSize int
}

// NewFruitSpawner returns a spawner that draws row and column independently
// and uniformly from [1, boardSize]. Row 0 and column 0 never get fruit.
func NewFruitSpawner(random adapter.RandomSource, boardSize int) FruitSpawner {
	return &randomFruitSpawner{random: random, boardSize: boardSize}
}

func (s *randomFruitSpawner) Spawn() m.Position {
	return m.Position{
		Row:    s.coordinate(),
		Column: s.coordinate(),
	}
}

func (s *randomFruitSpawner) coordinate() int {
	if s.boardSize <= 0 {
		return 1
	}

	return s.random.Intn(s.boardSize) + 1
}

// FindEaten returns the first fruit lying under the snake's head.
func FindEaten(snake []m.Position, fruits []m.Position) (m.Position, bool) {
	if len(snake) == 0 {
		return m.Position{}, false
	}

	head := snake[0]
	for _, fruit := range fruits {
		if fruit.Equal(head) {
			return fruit, true
		}
	}

	return m.Position{}, false
}

// Consume removes one fruit equal to eaten, keeping the order of the rest.
// The input slice is left untouched.
func Consume(fruits []m.Position, eaten m.Position) []m.Position {
	remaining := make([]m.Position, 0, len(fruits))
	removed := false

	for _, fruit := range fruits {
		if !removed && fruit.Equal(eaten) {
			removed = true
			continue
		}

		remaining = append(remaining, fruit)
	}

	return remaining
}
