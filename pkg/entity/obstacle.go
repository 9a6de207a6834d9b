package entity

import (
	"github.com/golangdaddy/swerve/pkg/geom"
	"github.com/golangdaddy/swerve/pkg/vehicle"
)

// BoxObstacle is a static, possibly rotated block. Hitting it is fatal.
type BoxObstacle struct {
	base
	rect *geom.Rectangle
}

func NewBoxObstacle(x, y, width, height, rotation float64) *BoxObstacle {
	return &BoxObstacle{
		base: newBase(),
		rect: geom.NewRectangle(x, y, width, height, rotation),
	}
}

func (b *BoxObstacle) Kind() Kind              { return KindBoxObstacle }
func (b *BoxObstacle) Shape() geom.Shape       { return b.rect }
func (b *BoxObstacle) Rect() *geom.Rectangle   { return b.rect }
func (b *BoxObstacle) Update(float64)          {}
func (b *BoxObstacle) OnHit(v vehicle.Vehicle) { v.Crash() }

// Side says which half of a wall pair a segment is.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// WallSegment is one half of a wall with a gap. Hitting it is fatal.
type WallSegment struct {
	base
	rect *geom.Rectangle
	side Side
}

// NewWallSegment spans [left, right] horizontally at y.
func NewWallSegment(left, right, y, thickness float64, side Side) *WallSegment {
	return &WallSegment{
		base: newBase(),
		rect: geom.NewRectangle((left+right)/2, y, right-left, thickness, 0),
		side: side,
	}
}

func (w *WallSegment) Kind() Kind              { return KindWallSegment }
func (w *WallSegment) Shape() geom.Shape       { return w.rect }
func (w *WallSegment) Rect() *geom.Rectangle   { return w.rect }
func (w *WallSegment) Side() Side              { return w.side }
func (w *WallSegment) Update(float64)          {}
func (w *WallSegment) OnHit(v vehicle.Vehicle) { v.Crash() }
