/*
Package path tracks the cells a robot visits while it moves along
axis-aligned segments of an integer grid.

A Path never stores individual cells. It keeps the committed segments
bucketed by their fixed coordinate and, on every insertion, discounts the
cells the new segment shares with earlier ones: crossings with perpendicular
segments and overlaps with collinear ones.
*/
package path

import "fmt"

// Direction is one of the four compass directions a robot can move in.
type Direction string

const (
	North Direction = "North" // +Y
	South Direction = "South" // -Y
	East  Direction = "East"  // +X
	West  Direction = "West"  // -X
)

// Directions lists every valid direction.
var Directions = []Direction{North, South, East, West}

// Orientation is the axis a direction moves along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	switch d {
	case North, South, East, West:
		return true
	default:
		return false
	}
}

// IsHorizontal returns true for East and West.
func (d Direction) IsHorizontal() bool {
	return d == East || d == West
}

// Orientation returns the axis d moves along.
func (d Direction) Orientation() Orientation {
	if d.IsHorizontal() {
		return Horizontal
	}
	return Vertical
}

// delta returns the unit step of d.
func (d Direction) delta() Coordinate {
	switch d {
	case North:
		return Coordinate{Y: 1}
	case South:
		return Coordinate{Y: -1}
	case East:
		return Coordinate{X: 1}
	case West:
		return Coordinate{X: -1}
	default:
		return Coordinate{}
	}
}

// Coordinate is a single cell of the grid.
type Coordinate struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Validate checks that both components lie within the grid limits.
func (c Coordinate) Validate() error {
	if !inRange(int64(c.X)) || !inRange(int64(c.Y)) {
		return fmt.Errorf("%w: %v", ErrCoordinateOutOfRange, c)
	}
	return nil
}

// Move tells the robot to walk Steps cells towards Direction.
type Move struct {
	Direction Direction `json:"direction"`
	Steps     int       `json:"steps"`
}
