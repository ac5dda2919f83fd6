package core

import "math"

// Direction is one of the four cardinal facings used to pick directional clips.
type Direction uint8

const (
	Down Direction = iota
	Up
	Right
	Left
)

// NumDirections is the number of cardinal directions; arrays indexed by
// Direction use it as their length.
const NumDirections = 4

// Directions lists every direction in index order.
var Directions = [NumDirections]Direction{Down, Up, Right, Left}

// String returns the lowercase name used as an animation clip suffix.
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Angle returns the heading of the direction in radians (screen space, y down).
func (d Direction) Angle() float64 {
	switch d {
	case Up:
		return -math.Pi / 2
	case Right:
		return 0
	case Left:
		return math.Pi
	default:
		return math.Pi / 2
	}
}

// AngleDirection discretizes a heading to a cardinal direction.
func AngleDirection(angle float64) Direction {
	return Polar(angle).Direction(Down)
}
