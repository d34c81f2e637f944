package sim

import "math"

// Vec2 is a 2D vector in canvas pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// SetMag returns v rescaled to length m. The zero vector stays zero.
func (v Vec2) SetMag(m float64) Vec2 {
	l := v.Mag()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(m / l)
}

// FromAngle returns the vector of length mag pointing at angle radians.
func FromAngle(angle, mag float64) Vec2 {
	return Vec2{math.Cos(angle) * mag, math.Sin(angle) * mag}
}

// Bounds is the size of the drawing surface.
type Bounds struct {
	W, H float64
}
