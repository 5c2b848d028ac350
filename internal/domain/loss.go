package domain

import m "gooze.dev/pkg/snake/internal/model"

// IsLoss reports whether the snake has bitten itself or left the board.
func IsLoss(snake []m.Position, boardSize int) bool {
	return LossCauseOf(snake, boardSize) != m.CauseNone
}

// LossCauseOf names the rule that ends the game, if any.
// A self-bite is reported before leaving the board.
func LossCauseOf(snake []m.Position, boardSize int) m.LossCause {
	if len(snake) == 0 {
		return m.CauseNone
	}

	head := snake[0]
	if m.Contains(snake[1:], head) {
		return m.CauseSelfBite
	}

	if !m.WithinBounds(head, boardSize) {
		return m.CauseOutOfBounds
	}

	return m.CauseNone
}
