package model

import (
	"fmt"
	"strings"
)

// Direction is one of the four headings a snake can travel in.
type Direction int

const (
	// Right increases the column.
	Right Direction = iota
	// Left decreases the column.
	Left
	// Up decreases the row.
	Up
	// Down increases the row.
	Down
)

// Directions lists every Direction in declaration order.
var Directions = []Direction{Right, Left, Up, Down}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Delta returns the (row, column) offset of a single step in this direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

// ParseDirection converts a direction name (or its first letter) to a Direction.
func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "right", "r":
		return Right, nil
	case "left", "l":
		return Left, nil
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	}

	return Right, fmt.Errorf("unknown direction %q", value)
}
