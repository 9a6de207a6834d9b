package road

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoadLanes(t *testing.T) {
	r := New(300, 3)
	assert.Equal(t, -150.0, r.Left())
	assert.Equal(t, 150.0, r.Right())
	assert.Equal(t, 100.0, r.LaneWidth())
	assert.Equal(t, -100.0, r.LaneCenterX(0))
	assert.Equal(t, 0.0, r.LaneCenterX(1))
	assert.Equal(t, 100.0, r.LaneCenterX(7))
	assert.Equal(t, []float64{-50, 50}, r.Dividers())

	assert.Equal(t, 0, r.LaneAt(-149))
	assert.Equal(t, 1, r.LaneAt(0))
	assert.Equal(t, 2, r.LaneAt(500))
}

func TestRoadClamp(t *testing.T) {
	r := New(200, 0)
	assert.Equal(t, 1, r.Lanes)
	assert.Empty(t, r.Dividers())
	assert.Equal(t, 90.0, r.Clamp(400, 10))
	assert.Equal(t, -90.0, r.Clamp(-400, 10))
	assert.Equal(t, 5.0, r.Clamp(5, 10))
	assert.Equal(t, 0.0, r.Clamp(50, 150))
	assert.True(t, r.Contains(100))
	assert.False(t, r.Contains(100.5))
}
