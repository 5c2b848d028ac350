package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	m "gooze.dev/pkg/snake/internal/model"
)

func TestResolve_RejectsReversal(t *testing.T) {
	for _, d := range m.Directions {
		t.Run(d.String(), func(t *testing.T) {
			assert.Equal(t, d, Resolve(d, d.Opposite()), "reversal must keep the current direction")
			assert.Equal(t, d, Resolve(d, d), "same direction is a no-op")
		})
	}
}

func TestResolve_AcceptsPerpendicular(t *testing.T) {
	tests := []struct {
		current   m.Direction
		requested m.Direction
	}{
		{m.Right, m.Up},
		{m.Right, m.Down},
		{m.Left, m.Up},
		{m.Left, m.Down},
		{m.Up, m.Left},
		{m.Up, m.Right},
		{m.Down, m.Left},
		{m.Down, m.Right},
	}

	for _, tt := range tests {
		t.Run(tt.current.String()+"->"+tt.requested.String(), func(t *testing.T) {
			assert.Equal(t, tt.requested, Resolve(tt.current, tt.requested))
		})
	}
}

func TestResolve_MatchesOppositeRelation(t *testing.T) {
	for _, current := range m.Directions {
		for _, requested := range m.Directions {
			want := requested
			if requested == current.Opposite() {
				want = current
			}

			assert.Equal(t, want, Resolve(current, requested), "%s -> %s", current, requested)
		}
	}
}

func TestResolve_UnknownDirections(t *testing.T) {
	assert.Equal(t, m.Up, Resolve(m.Direction(42), m.Up))
	assert.Equal(t, m.Left, Resolve(m.Left, m.Direction(-1)))
}
