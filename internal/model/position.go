// Package model defines the data structures of the snake simulation.
package model

import "fmt"

// Position is a (row, column) cell on the board.
// Validity is board-relative and checked with WithinBounds.
type Position struct {
	Row    int
	Column int
}

// Equal reports whether p and other name the same cell.
func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Column == other.Column
}

// Step returns the cell one move away from p in the given direction.
func (p Position) Step(direction Direction) Position {
	dRow, dColumn := direction.Delta()

	return Position{Row: p.Row + dRow, Column: p.Column + dColumn}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

// WithinBounds reports whether pos lies on a board of the given size.
//
// Both axes accept 0 through boardSize inclusive, so a board of size N has
// N+1 playable rows and columns.
func WithinBounds(pos Position, boardSize int) bool {
	return pos.Row >= 0 && pos.Row <= boardSize &&
		pos.Column >= 0 && pos.Column <= boardSize
}

// Contains reports whether any position in positions equals pos.
func Contains(positions []Position, pos Position) bool {
	for _, candidate := range positions {
		if candidate.Equal(pos) {
			return true
		}
	}

	return false
}
