package geom

import "math"

// Vec2 is a point or direction in world space.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }

// Perp returns v rotated a quarter turn.
func (v Vec2) Perp() Vec2 { return Vec2{X: -v.Y, Y: v.X} }

// Rotate returns v rotated by angle radians. Positive angles turn clockwise
// on screen because world Y grows downward.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Normalize returns the unit vector of v, or the zero vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

func (v Vec2) finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min Vec2
	Max Vec2
}

// Intersects reports whether the two boxes overlap or touch.
func (b AABB) Intersects(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X && b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

func (b AABB) Width() float64  { return b.Max.X - b.Min.X }
func (b AABB) Height() float64 { return b.Max.Y - b.Min.Y }
