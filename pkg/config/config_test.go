package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
	assert.Equal(t, Default(), New())
}

func TestNewMergesFieldByField(t *testing.T) {
	cfg := New(
		func(c *Config) {
			c.Road.Lanes = 4
			c.Spawn.ObstacleSpacing = 300
		},
		func(c *Config) {
			c.Spawn.ObstacleSpacing = 250
			c.LogLevel = "debug"
		},
		nil,
	)
	assert.Equal(t, 4, cfg.Road.Lanes)
	assert.Equal(t, DefaultRoadWidth, cfg.Road.Width)
	assert.Equal(t, 250.0, cfg.Spawn.ObstacleSpacing)
	assert.Equal(t, DefaultLookaheadAhead, cfg.Spawn.LookaheadAhead)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultCyclistScoreBonus, cfg.Cyclists.ScoreBonus)
}

func TestNewKeepsExplicitZeros(t *testing.T) {
	cfg := New(func(c *Config) {
		c.Cyclists.Base = 0
		c.Cyclists.Max = 0
		c.Obstacles.MaxTilt = 0
		c.Spawn.InitialSpawnY = 0
	})
	require.NoError(t, cfg.Validate())
	assert.Zero(t, cfg.Cyclists.Base)
	assert.Zero(t, cfg.Cyclists.Max)
	assert.Zero(t, cfg.Obstacles.MaxTilt)
	assert.Zero(t, cfg.Spawn.InitialSpawnY)
	assert.Equal(t, DefaultCyclistGrowth, cfg.Cyclists.Growth)
}

func TestValidateCollectsProblems(t *testing.T) {
	cfg := New(func(c *Config) {
		c.Road.Width = -1
		c.Obstacles.WallGapMin = 200
		c.Obstacles.WallGapMax = 100
		c.PowerUps.Max = 0.9
		c.Cyclists.Max = 0.5
	})
	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "road.width")
	assert.Contains(t, msg, "wallGapMax")
	assert.Contains(t, msg, "must not exceed 1")
}

func TestLoadYAML(t *testing.T) {
	doc := `
logLevel: warn
car: mustang
road:
  lanes: 4
obstacles:
  wallTransitionScore: 2000
powerUps:
  durationMs: 3000
`
	cfg, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "mustang", cfg.Car)
	assert.Equal(t, 4, cfg.Road.Lanes)
	assert.Equal(t, 2000.0, cfg.Obstacles.WallTransitionScore)
	assert.Equal(t, 3000.0, cfg.PowerUps.DurationMs)
	assert.Equal(t, DefaultPowerUpMultiplier, cfg.PowerUps.Multiplier)
}

func TestLoadYAMLKeepsExplicitZeros(t *testing.T) {
	doc := `
spawn:
  initialSpawnY: 0
obstacles:
  maxTilt: 0
cyclists:
  base: 0
  max: 0
`
	cfg, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Zero(t, cfg.Spawn.InitialSpawnY)
	assert.Zero(t, cfg.Obstacles.MaxTilt)
	assert.Zero(t, cfg.Cyclists.Base)
	assert.Zero(t, cfg.Cyclists.Max)
	// Siblings of the zeroed keys keep their defaults.
	assert.Equal(t, DefaultLookaheadAhead, cfg.Spawn.LookaheadAhead)
	assert.Equal(t, DefaultCyclistWidth, cfg.Cyclists.Width)
}

func TestLoadYAMLEmptyAndInvalid(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = LoadYAML(strings.NewReader("bogus: true\n"))
	require.Error(t, err)

	_, err = LoadYAML(strings.NewReader("session:\n  maxFrameMs: -4\n"))
	require.ErrorContains(t, err, "maxFrameMs")
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "swerve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("road:\n  width: 480\n"), 0o644))
	cfg, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 480.0, cfg.Road.Width)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
