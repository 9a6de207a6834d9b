package geom

import "math"

// axisEpsilon is the tolerance used when de-duplicating separating axes.
const axisEpsilon = 1e-4

func circlesCollide(a, b *Circle) bool {
	if !a.valid() || !b.valid() {
		return false
	}
	sum := a.radius + b.radius
	return b.center.Sub(a.center).LenSq() < sum*sum
}

// rectanglesCollide runs the separating axis test over the edge normals of
// both rectangles.
func rectanglesCollide(a, b *Rectangle) bool {
	if !a.valid() || !b.valid() {
		return false
	}
	axes := make([]Vec2, 0, 4)
	axes = appendAxes(axes, a)
	axes = appendAxes(axes, b)

	for _, axis := range axes {
		minA, maxA := project(a, axis)
		minB, maxB := project(b, axis)
		if maxA < minB || maxB < minA {
			return false
		}
	}
	return true
}

// appendAxes adds the unit normals of r's edges, skipping zero-length edges
// and axes already present up to sign.
func appendAxes(axes []Vec2, r *Rectangle) []Vec2 {
	for i := range r.corners {
		edge := r.corners[(i+1)%4].Sub(r.corners[i])
		if edge.LenSq() == 0 {
			continue
		}
		axis := edge.Perp().Normalize()
		if !containsAxis(axes, axis) {
			axes = append(axes, axis)
		}
	}
	return axes
}

func containsAxis(axes []Vec2, axis Vec2) bool {
	for _, a := range axes {
		if math.Abs(a.X-axis.X) < axisEpsilon && math.Abs(a.Y-axis.Y) < axisEpsilon {
			return true
		}
		if math.Abs(a.X+axis.X) < axisEpsilon && math.Abs(a.Y+axis.Y) < axisEpsilon {
			return true
		}
	}
	return false
}

func project(r *Rectangle, axis Vec2) (float64, float64) {
	lo := r.corners[0].Dot(axis)
	hi := lo
	for _, c := range r.corners[1:] {
		p := c.Dot(axis)
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	return lo, hi
}

// rectangleCircleCollide finds the closest point on any rectangle edge to
// the circle centre. A centre inside the rectangle always collides.
func rectangleCircleCollide(r *Rectangle, c *Circle) bool {
	if !r.valid() || !c.valid() {
		return false
	}
	// Superset of the edge test: a circle wholly inside never nears an edge.
	if r.Contains(c.center) {
		return true
	}
	best := math.Inf(1)
	for i := range r.corners {
		p := ClosestPointOnSegment(c.center, r.corners[i], r.corners[(i+1)%4])
		if d := c.center.Sub(p).LenSq(); d < best {
			best = d
		}
	}
	return best <= c.radius*c.radius
}

// ClosestPointOnSegment returns the point of segment a-b nearest to p.
// A zero-length segment yields a.
func ClosestPointOnSegment(p, a, b Vec2) Vec2 {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t))
}
