package vehicle

import "github.com/golangdaddy/swerve/pkg/geom"

// Vehicle is what map entities act on when they are hit.
type Vehicle interface {
	Shape() geom.Shape
	ApplyEffect(e Effect)
	Crash()
	IsCrashed() bool
}

// Controls is the per-tick input state.
type Controls struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}
