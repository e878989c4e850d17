package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection(t *testing.T) {
	t.Run("orientation", func(t *testing.T) {
		assert.True(t, East.IsHorizontal())
		assert.True(t, West.IsHorizontal())
		assert.False(t, North.IsHorizontal())
		assert.False(t, South.IsHorizontal())
		assert.Equal(t, Vertical, North.Orientation())
		assert.Equal(t, Horizontal, West.Orientation())
	})

	t.Run("validity", func(t *testing.T) {
		for _, d := range Directions {
			assert.True(t, d.Valid(), d)
		}
		assert.False(t, Direction("north").Valid())
		assert.False(t, Direction("").Valid())
	})
}

func TestNewSegment(t *testing.T) {
	start := Coordinate{X: 5, Y: 7}

	tests := []struct {
		name string
		move Move
		end  Coordinate
	}{
		{name: "north", move: Move{Direction: North, Steps: 4}, end: Coordinate{X: 5, Y: 11}},
		{name: "south", move: Move{Direction: South, Steps: 4}, end: Coordinate{X: 5, Y: 3}},
		{name: "east", move: Move{Direction: East, Steps: 2}, end: Coordinate{X: 7, Y: 7}},
		{name: "west", move: Move{Direction: West, Steps: 10}, end: Coordinate{X: -5, Y: 7}},
		{name: "zero steps", move: Move{Direction: East, Steps: 0}, end: start},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSegment(start, tt.move)
			require.NoError(t, err)
			assert.Equal(t, start, s.Start)
			assert.Equal(t, tt.end, s.End)
			assert.Equal(t, tt.move.Direction, s.Direction)
			assert.Equal(t, tt.move.Steps, s.TotalCells())
			assert.NoError(t, s.Validate())
		})
	}

	t.Run("negative steps", func(t *testing.T) {
		_, err := NewSegment(start, Move{Direction: North, Steps: -1})
		assert.ErrorIs(t, err, ErrNegativeSteps)
	})

	t.Run("unknown direction", func(t *testing.T) {
		_, err := NewSegment(start, Move{Direction: "Up", Steps: 1})
		assert.ErrorIs(t, err, ErrUnknownDirection)
	})
}

func TestSegmentValidate(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
	}{
		{name: "wrong axis", seg: Segment{Start: Coordinate{}, End: Coordinate{X: 3}, Direction: North}},
		{name: "wrong sign", seg: Segment{Start: Coordinate{}, End: Coordinate{Y: 3}, Direction: South}},
		{name: "diagonal", seg: Segment{Start: Coordinate{}, End: Coordinate{X: 1, Y: 1}, Direction: East}},
		{name: "west going east", seg: Segment{Start: Coordinate{X: 2}, End: Coordinate{X: 4}, Direction: West}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.seg.Validate(), ErrInconsistentSegment)
		})
	}

	t.Run("unknown direction", func(t *testing.T) {
		s := Segment{Direction: "Sideways"}
		assert.ErrorIs(t, s.Validate(), ErrUnknownDirection)
	})
}

func TestSegmentRanges(t *testing.T) {
	tests := []struct {
		name           string
		move           Move
		fixed          int
		spanLo, spanHi int
		newLo, newHi   int
	}{
		{name: "north", move: Move{Direction: North, Steps: 3}, fixed: 1, spanLo: 2, spanHi: 5, newLo: 3, newHi: 5},
		{name: "south", move: Move{Direction: South, Steps: 3}, fixed: 1, spanLo: -1, spanHi: 2, newLo: -1, newHi: 1},
		{name: "east", move: Move{Direction: East, Steps: 2}, fixed: 2, spanLo: 1, spanHi: 3, newLo: 2, newHi: 3},
		{name: "west", move: Move{Direction: West, Steps: 2}, fixed: 2, spanLo: -1, spanHi: 1, newLo: -1, newHi: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSegment(Coordinate{X: 1, Y: 2}, tt.move)
			require.NoError(t, err)

			lo, hi := s.Span()
			assert.Equal(t, tt.spanLo, lo)
			assert.Equal(t, tt.spanHi, hi)

			lo, hi = s.Fresh()
			assert.Equal(t, tt.newLo, lo)
			assert.Equal(t, tt.newHi, hi)
			assert.Equal(t, tt.fixed, s.Fixed())
		})
	}
}
