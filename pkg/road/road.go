package road

import "math"

// Road is a straight, endless strip centred on x = 0 and divided into
// equal lanes. It is the horizontal frame for spawning and drawing.
type Road struct {
	Width float64
	Lanes int
}

// New returns a road, falling back to one lane for a bad lane count.
func New(width float64, lanes int) Road {
	if lanes < 1 {
		lanes = 1
	}
	return Road{Width: math.Abs(width), Lanes: lanes}
}

func (r Road) Left() float64  { return -r.Width / 2 }
func (r Road) Right() float64 { return r.Width / 2 }

// LaneWidth is the width of a single lane.
func (r Road) LaneWidth() float64 {
	return r.Width / float64(r.Lanes)
}

// LaneCenterX returns the centre x of lane i, counting from the left.
// Out-of-range indexes are clamped.
func (r Road) LaneCenterX(i int) float64 {
	i = max(0, min(r.Lanes-1, i))
	return r.Left() + r.LaneWidth()*(float64(i)+0.5)
}

// LaneAt returns the lane index containing x.
func (r Road) LaneAt(x float64) int {
	i := int(math.Floor((x - r.Left()) / r.LaneWidth()))
	return max(0, min(r.Lanes-1, i))
}

// Dividers returns the x of each line between lanes.
func (r Road) Dividers() []float64 {
	out := make([]float64, 0, r.Lanes-1)
	for i := 1; i < r.Lanes; i++ {
		out = append(out, r.Left()+r.LaneWidth()*float64(i))
	}
	return out
}

// Clamp keeps x inside the road, leaving margin on either side.
func (r Road) Clamp(x, margin float64) float64 {
	lo, hi := r.Left()+margin, r.Right()-margin
	if lo > hi {
		return 0
	}
	return math.Max(lo, math.Min(hi, x))
}

// Contains reports whether x is on the tarmac.
func (r Road) Contains(x float64) bool {
	return x >= r.Left() && x <= r.Right()
}
