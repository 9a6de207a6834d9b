package geom

import "math"

// Shape is a collidable primitive. Implementations are Rectangle and Circle.
type Shape interface {
	Position() Vec2
	SetPosition(x, y float64)
	CollidesWith(other Shape) bool
	AABB() AABB
}

// Rectangle is an oriented rectangle centred on its position. The four
// world-space corners are cached and recomputed by every mutator.
type Rectangle struct {
	center   Vec2
	width    float64
	height   float64
	rotation float64
	corners  [4]Vec2
}

// NewRectangle creates a rectangle centred at (x, y) rotated by rotation radians.
func NewRectangle(x, y, width, height, rotation float64) *Rectangle {
	r := &Rectangle{
		center:   Vec2{X: x, Y: y},
		width:    width,
		height:   height,
		rotation: rotation,
	}
	r.updateCorners()
	return r
}

func (r *Rectangle) Position() Vec2    { return r.center }
func (r *Rectangle) Width() float64    { return r.width }
func (r *Rectangle) Height() float64   { return r.height }
func (r *Rectangle) Rotation() float64 { return r.rotation }
func (r *Rectangle) Corners() [4]Vec2  { return r.corners }

// SetPosition moves the rectangle centre.
func (r *Rectangle) SetPosition(x, y float64) {
	r.center = Vec2{X: x, Y: y}
	r.updateCorners()
}

// SetRotation sets the rotation in radians.
func (r *Rectangle) SetRotation(rotation float64) {
	r.rotation = rotation
	r.updateCorners()
}

// SetSize changes width and height, keeping the centre.
func (r *Rectangle) SetSize(width, height float64) {
	r.width = width
	r.height = height
	r.updateCorners()
}

// SetTransform updates position and rotation with a single corner rebuild.
func (r *Rectangle) SetTransform(x, y, rotation float64) {
	r.center = Vec2{X: x, Y: y}
	r.rotation = rotation
	r.updateCorners()
}

// updateCorners rebuilds the corners clockwise from the top-left in local space.
func (r *Rectangle) updateCorners() {
	hw, hh := r.width/2, r.height/2
	local := [4]Vec2{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
	for i, p := range local {
		r.corners[i] = p.Rotate(r.rotation).Add(r.center)
	}
}

// Contains reports whether p lies inside or on the rectangle.
func (r *Rectangle) Contains(p Vec2) bool {
	local := p.Sub(r.center).Rotate(-r.rotation)
	return math.Abs(local.X) <= r.width/2 && math.Abs(local.Y) <= r.height/2
}

func (r *Rectangle) AABB() AABB {
	box := AABB{Min: r.corners[0], Max: r.corners[0]}
	for _, c := range r.corners[1:] {
		box.Min.X = math.Min(box.Min.X, c.X)
		box.Min.Y = math.Min(box.Min.Y, c.Y)
		box.Max.X = math.Max(box.Max.X, c.X)
		box.Max.Y = math.Max(box.Max.Y, c.Y)
	}
	return box
}

// CollidesWith tests r against a Rectangle or Circle.
func (r *Rectangle) CollidesWith(other Shape) bool {
	switch o := other.(type) {
	case *Rectangle:
		return rectanglesCollide(r, o)
	case *Circle:
		return rectangleCircleCollide(r, o)
	default:
		return false
	}
}

func (r *Rectangle) valid() bool {
	for _, c := range r.corners {
		if !c.finite() {
			return false
		}
	}
	return true
}

// Circle is a circle centred on its position.
type Circle struct {
	center Vec2
	radius float64
}

// NewCircle creates a circle centred at (x, y).
func NewCircle(x, y, radius float64) *Circle {
	return &Circle{center: Vec2{X: x, Y: y}, radius: radius}
}

func (c *Circle) Position() Vec2  { return c.center }
func (c *Circle) Radius() float64 { return c.radius }

func (c *Circle) SetPosition(x, y float64) {
	c.center = Vec2{X: x, Y: y}
}

func (c *Circle) SetRadius(radius float64) {
	c.radius = radius
}

func (c *Circle) AABB() AABB {
	r := Vec2{X: c.radius, Y: c.radius}
	return AABB{Min: c.center.Sub(r), Max: c.center.Add(r)}
}

// CollidesWith tests c against a Rectangle or Circle.
func (c *Circle) CollidesWith(other Shape) bool {
	switch o := other.(type) {
	case *Circle:
		return circlesCollide(c, o)
	case *Rectangle:
		return rectangleCircleCollide(o, c)
	default:
		return false
	}
}

func (c *Circle) valid() bool {
	return c.center.finite() && !math.IsNaN(c.radius) && c.radius >= 0
}
