package domain

import m "gooze.dev/pkg/snake/internal/model"

// turns[current][requested] is the direction committed when requested arrives
// while heading in current. Reversals keep current.
var turns = [4][4]m.Direction{
	m.Right: {m.Right: m.Right, m.Left: m.Right, m.Up: m.Up, m.Down: m.Down},
	m.Left:  {m.Right: m.Left, m.Left: m.Left, m.Up: m.Up, m.Down: m.Down},
	m.Up:    {m.Right: m.Right, m.Left: m.Left, m.Up: m.Up, m.Down: m.Up},
	m.Down:  {m.Right: m.Right, m.Left: m.Left, m.Up: m.Down, m.Down: m.Down},
}

// Resolve arbitrates a requested direction against the current one.
// A 180° reversal is silently rejected; any other request is accepted.
func Resolve(current, requested m.Direction) m.Direction {
	if !valid(current) {
		return requested
	}

	if !valid(requested) {
		return current
	}

	return turns[current][requested]
}

func valid(d m.Direction) bool {
	return d >= m.Right && d <= m.Down
}
