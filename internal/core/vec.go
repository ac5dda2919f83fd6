package core

import "math"

// Vec2 is a 2D point or direction in world space.
// Methods never mutate the receiver.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Lerp linearly interpolates from v towards o by t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// AngleTo returns the angle in radians of the ray from v to o.
func (v Vec2) AngleTo(o Vec2) float64 {
	return math.Atan2(o.Y-v.Y, o.X-v.X)
}

// Distance returns the euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Project returns the point reached by travelling dist from v along angle.
func (v Vec2) Project(angle, dist float64) Vec2 {
	return Vec2{X: v.X + math.Cos(angle)*dist, Y: v.Y + math.Sin(angle)*dist}
}

// Angle returns the heading of v treated as a direction.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Direction discretizes v to a cardinal direction by its dominant axis.
// Ties go to the vertical axis; the zero vector yields def.
func (v Vec2) Direction(def Direction) Direction {
	if v.IsZero() {
		return def
	}
	if math.Abs(v.X) > math.Abs(v.Y) {
		if v.X > 0 {
			return Right
		}
		return Left
	}
	if v.Y > 0 {
		return Down
	}
	return Up
}

// Polar returns the unit vector pointing along angle.
func Polar(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}
