package controller

import (
	"fmt"
	"strings"

	m "gooze.dev/pkg/snake/internal/model"
)

const lossBanner = "Ohhh nooo"

// renderBoard draws every in-bounds cell, rows and columns 0..BoardSize,
// one line per row.
func renderBoard(snapshot m.Snapshot, paint func(kind m.CellKind) string) string {
	var b strings.Builder

	for row := 0; row <= snapshot.BoardSize; row++ {
		for column := 0; column <= snapshot.BoardSize; column++ {
			b.WriteString(paint(snapshot.CellAt(m.Position{Row: row, Column: column})))
		}

		b.WriteString("\n")
	}

	return b.String()
}

func textCell(kind m.CellKind) string {
	switch kind {
	case m.CellSnake:
		return "o"
	case m.CellFruit:
		return "*"
	default:
		return "."
	}
}

func statusLine(snapshot m.Snapshot) string {
	if snapshot.Lost {
		return fmt.Sprintf("%s! %s. Score: %d", lossBanner, snapshot.Cause, snapshot.Score)
	}

	return fmt.Sprintf("Score: %d  Length: %d  Speed: %s", snapshot.Score, len(snapshot.Snake), snapshot.Period)
}
