package path

import (
	"errors"
	"fmt"
	"math"
)

// Grid limits. Coordinates and step counts are 32-bit values, which keeps
// every span length and running count far from int overflow.
const (
	MinCoordinate = math.MinInt32
	MaxCoordinate = math.MaxInt32
	MaxSteps      = math.MaxInt32
)

// Segment-related errors.
var (
	ErrNegativeSteps        = errors.New("negative step count")
	ErrStepsOutOfRange      = errors.New("step count out of range")
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
	ErrUnknownDirection     = errors.New("unknown direction")
	ErrInconsistentSegment  = errors.New("segment endpoints disagree with its direction")
)

// Segment is a directed run of cells from Start to End.
// Start is the cell the robot stands on before moving, so it is never counted
// as a cell of the segment itself.
type Segment struct {
	Start     Coordinate
	End       Coordinate
	Direction Direction
}

// NewSegment builds the segment a robot at start walks when executing m.
func NewSegment(start Coordinate, m Move) (Segment, error) {
	if !m.Direction.Valid() {
		return Segment{}, fmt.Errorf("%w: %q", ErrUnknownDirection, m.Direction)
	}
	if m.Steps < 0 {
		return Segment{}, fmt.Errorf("%w: %d", ErrNegativeSteps, m.Steps)
	}
	if m.Steps > MaxSteps {
		return Segment{}, fmt.Errorf("%w: %d", ErrStepsOutOfRange, m.Steps)
	}
	if err := start.Validate(); err != nil {
		return Segment{}, err
	}

	// Both operands fit in 32 bits, so the sum cannot wrap in int64.
	d := m.Direction.delta()
	x := int64(start.X) + int64(d.X)*int64(m.Steps)
	y := int64(start.Y) + int64(d.Y)*int64(m.Steps)
	if !inRange(x) || !inRange(y) {
		return Segment{}, fmt.Errorf("%w: %d steps %s from %v", ErrCoordinateOutOfRange, m.Steps, m.Direction, start)
	}

	return Segment{
		Start:     start,
		End:       Coordinate{X: int(x), Y: int(y)},
		Direction: m.Direction,
	}, nil
}

// Validate checks that the endpoints lie on the axis of the direction and
// that End is reached by walking towards Direction.
func (s Segment) Validate() error {
	if !s.Direction.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, s.Direction)
	}
	if err := s.Start.Validate(); err != nil {
		return err
	}
	if err := s.End.Validate(); err != nil {
		return err
	}

	d := s.Direction.delta()
	dx, dy := s.End.X-s.Start.X, s.End.Y-s.Start.Y
	if (d.X == 0 && dx != 0) || (d.Y == 0 && dy != 0) || dx*d.X < 0 || dy*d.Y < 0 {
		return fmt.Errorf("%w: %v -> %v heading %s", ErrInconsistentSegment, s.Start, s.End, s.Direction)
	}
	return nil
}

// IsHorizontal returns true if the segment runs along the X axis.
func (s Segment) IsHorizontal() bool {
	return s.Direction.IsHorizontal()
}

// TotalCells returns the number of cells the segment adds to a path that
// already contains its start cell. It equals the step count.
func (s Segment) TotalCells() int {
	lo, hi := s.Span()
	return hi - lo
}

// Fixed returns the coordinate shared by every cell of the segment:
// Y for horizontal segments, X for vertical ones.
func (s Segment) Fixed() int {
	if s.IsHorizontal() {
		return s.Start.Y
	}
	return s.Start.X
}

// Span returns the closed range the segment covers along its axis,
// start cell included, ordered by coordinate rather than by travel.
func (s Segment) Span() (lo, hi int) {
	a, b := s.Start.Y, s.End.Y
	if s.IsHorizontal() {
		a, b = s.Start.X, s.End.X
	}
	if a > b {
		a, b = b, a
	}
	return a, b
}

// Fresh returns the closed range of the cells the segment moves onto, i.e.
// Span without Start. For a zero-length segment hi < lo.
func (s Segment) Fresh() (lo, hi int) {
	lo, hi = s.Span()
	switch s.Direction {
	case North, East:
		lo++
	default:
		hi--
	}
	return lo, hi
}

func inRange(v int64) bool {
	return v >= MinCoordinate && v <= MaxCoordinate
}
