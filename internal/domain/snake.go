package domain

import m "gooze.dev/pkg/snake/internal/model"

// InitialSnake returns the three-segment snake every session starts with,
// lying on row 0 with its head at column 2.
func InitialSnake() []m.Position {
	return []m.Position{
		{Row: 0, Column: 2},
		{Row: 0, Column: 1},
		{Row: 0, Column: 0},
	}
}

// Advance moves the snake one step. The head steps in direction; every other
// segment steps one cell toward the cell its predecessor occupied before the
// move. The input slice is left untouched.
func Advance(snake []m.Position, direction m.Direction) []m.Position {
	if len(snake) == 0 {
		return nil
	}

	next := make([]m.Position, len(snake))
	next[0] = snake[0].Step(direction)

	for i := 1; i < len(snake); i++ {
		next[i] = follow(snake[i], snake[i-1])
	}

	return next
}

// Grow appends a tail segment one cell past the current tail in direction.
func Grow(snake []m.Position, direction m.Direction) []m.Position {
	if len(snake) == 0 {
		return nil
	}

	grown := make([]m.Position, len(snake), len(snake)+1)
	copy(grown, snake)

	return append(grown, snake[len(snake)-1].Step(direction))
}

// follow steps segment one cell toward leader.
func follow(segment, leader m.Position) m.Position {
	direction, ok := heading(segment, leader)
	if !ok {
		return segment
	}

	return segment.Step(direction)
}

// heading infers the direction of travel from one cell to another.
// Rows are compared before columns; equal cells have no heading.
func heading(from, to m.Position) (m.Direction, bool) {
	switch {
	case to.Row > from.Row:
		return m.Down, true
	case to.Row < from.Row:
		return m.Up, true
	case to.Column > from.Column:
		return m.Right, true
	case to.Column < from.Column:
		return m.Left, true
	}

	return m.Right, false
}
