package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/golangdaddy/swerve/pkg/geom"
	"github.com/golangdaddy/swerve/pkg/vehicle"
)

// Kind identifies an entity type for drawing and logging.
type Kind int

const (
	KindBoxObstacle Kind = iota
	KindWallSegment
	KindCyclist
	KindPowerUp
)

func (k Kind) String() string {
	switch k {
	case KindBoxObstacle:
		return "box"
	case KindWallSegment:
		return "wall"
	case KindCyclist:
		return "cyclist"
	case KindPowerUp:
		return "powerup"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entity is anything on the road the car can hit. Inactive entities are
// neither drawn nor collided with.
type Entity interface {
	ID() uuid.UUID
	Kind() Kind
	Shape() geom.Shape
	Active() bool
	Update(dtMs float64)
	OnHit(v vehicle.Vehicle)
}

type base struct {
	id     uuid.UUID
	active bool
}

func newBase() base {
	return base{id: uuid.New(), active: true}
}

func (b *base) ID() uuid.UUID { return b.id }
func (b *base) Active() bool  { return b.active }
