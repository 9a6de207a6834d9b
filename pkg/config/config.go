package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultLogLevel controls verbosity for game logs.
	DefaultLogLevel = "info"
	// DefaultCar is the catalogue model driven when none is picked.
	DefaultCar = "Civic"

	DefaultRoadWidth = 360.0
	DefaultRoadLanes = 3

	// DefaultLookaheadAhead is how far ahead of the car (toward -Y) entities
	// are spawned and kept.
	DefaultLookaheadAhead = 1200.0
	// DefaultLookaheadBehind is how far behind the car entities survive.
	DefaultLookaheadBehind = 400.0
	// DefaultInitialSpawnY leaves the start line clear.
	DefaultInitialSpawnY   = -300.0
	DefaultObstacleSpacing = 220.0

	DefaultObstacleMinSize = 24.0
	DefaultObstacleMaxSize = 56.0
	// DefaultObstacleMaxTilt is the largest box rotation either way, radians.
	DefaultObstacleMaxTilt = 0.3
	// DefaultWallTransitionScore is the travelled distance after which boxes
	// give way to walls with gaps.
	DefaultWallTransitionScore = 5000.0
	DefaultWallGapMin          = 70.0
	DefaultWallGapMax          = 140.0
	DefaultWallThickness       = 24.0

	DefaultPowerUpBase       = 0.08
	DefaultPowerUpGrowth     = 0.00001
	DefaultPowerUpMax        = 0.2
	DefaultPowerUpRadius     = 12.0
	DefaultPowerUpMultiplier = 1.5
	DefaultPowerUpDurationMs = 5000.0

	DefaultCyclistBase       = 0.1
	DefaultCyclistGrowth     = 0.00002
	DefaultCyclistMax        = 0.3
	DefaultCyclistWidth      = 10.0
	DefaultCyclistHeight     = 24.0
	DefaultCyclistSpeed      = 60.0
	DefaultCyclistRange      = 60.0
	DefaultCyclistScoreBonus = 50
	DefaultCyclistSizeBonus  = 4.0

	DefaultParticleCount  = 24
	DefaultParticleLifeMs = 800.0

	// DefaultMaxFrameMs caps a single tick so a stalled frame cannot
	// tunnel the car through obstacles.
	DefaultMaxFrameMs       = 32.0
	DefaultDistancePerPoint = 10.0
)

// Config captures every tunable of a game session.
type Config struct {
	LogLevel  string         `yaml:"logLevel"`
	Car       string         `yaml:"car"`
	Road      RoadConfig     `yaml:"road"`
	Spawn     SpawnConfig    `yaml:"spawn"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	PowerUps  PowerUpConfig  `yaml:"powerUps"`
	Cyclists  CyclistConfig  `yaml:"cyclists"`
	Session   SessionConfig  `yaml:"session"`
}

type RoadConfig struct {
	Width float64 `yaml:"width"`
	Lanes int     `yaml:"lanes"`
}

// SpawnConfig positions the scrolling window around the car.
type SpawnConfig struct {
	LookaheadAhead  float64 `yaml:"lookaheadAhead"`
	LookaheadBehind float64 `yaml:"lookaheadBehind"`
	InitialSpawnY   float64 `yaml:"initialSpawnY"`
	ObstacleSpacing float64 `yaml:"obstacleSpacing"`
}

type ObstacleConfig struct {
	MinSize             float64 `yaml:"minSize"`
	MaxSize             float64 `yaml:"maxSize"`
	MaxTilt             float64 `yaml:"maxTilt"`
	WallTransitionScore float64 `yaml:"wallTransitionScore"`
	WallGapMin          float64 `yaml:"wallGapMin"`
	WallGapMax          float64 `yaml:"wallGapMax"`
	WallThickness       float64 `yaml:"wallThickness"`
}

type PowerUpConfig struct {
	Base       float64 `yaml:"base"`
	Growth     float64 `yaml:"growth"` // added probability per unit of distance
	Max        float64 `yaml:"max"`
	Radius     float64 `yaml:"radius"`
	Multiplier float64 `yaml:"multiplier"`
	DurationMs float64 `yaml:"durationMs"`
}

type CyclistConfig struct {
	Base           float64 `yaml:"base"`
	Growth         float64 `yaml:"growth"`
	Max            float64 `yaml:"max"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	Range          float64 `yaml:"range"`
	ScoreBonus     int     `yaml:"scoreBonus"`
	SizeBonus      float64 `yaml:"sizeBonus"`
	ParticleCount  int     `yaml:"particleCount"`
	ParticleLifeMs float64 `yaml:"particleLifeMs"`
}

type SessionConfig struct {
	MaxFrameMs       float64 `yaml:"maxFrameMs"`
	DistancePerPoint float64 `yaml:"distancePerPoint"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Car:      DefaultCar,
		Road: RoadConfig{
			Width: DefaultRoadWidth,
			Lanes: DefaultRoadLanes,
		},
		Spawn: SpawnConfig{
			LookaheadAhead:  DefaultLookaheadAhead,
			LookaheadBehind: DefaultLookaheadBehind,
			InitialSpawnY:   DefaultInitialSpawnY,
			ObstacleSpacing: DefaultObstacleSpacing,
		},
		Obstacles: ObstacleConfig{
			MinSize:             DefaultObstacleMinSize,
			MaxSize:             DefaultObstacleMaxSize,
			MaxTilt:             DefaultObstacleMaxTilt,
			WallTransitionScore: DefaultWallTransitionScore,
			WallGapMin:          DefaultWallGapMin,
			WallGapMax:          DefaultWallGapMax,
			WallThickness:       DefaultWallThickness,
		},
		PowerUps: PowerUpConfig{
			Base:       DefaultPowerUpBase,
			Growth:     DefaultPowerUpGrowth,
			Max:        DefaultPowerUpMax,
			Radius:     DefaultPowerUpRadius,
			Multiplier: DefaultPowerUpMultiplier,
			DurationMs: DefaultPowerUpDurationMs,
		},
		Cyclists: CyclistConfig{
			Base:           DefaultCyclistBase,
			Growth:         DefaultCyclistGrowth,
			Max:            DefaultCyclistMax,
			Width:          DefaultCyclistWidth,
			Height:         DefaultCyclistHeight,
			Speed:          DefaultCyclistSpeed,
			Range:          DefaultCyclistRange,
			ScoreBonus:     DefaultCyclistScoreBonus,
			SizeBonus:      DefaultCyclistSizeBonus,
			ParticleCount:  DefaultParticleCount,
			ParticleLifeMs: DefaultParticleLifeMs,
		},
		Session: SessionConfig{
			MaxFrameMs:       DefaultMaxFrameMs,
			DistancePerPoint: DefaultDistancePerPoint,
		},
	}
}

// Override adjusts a Config in place. Only the fields it touches change,
// so an explicit zero is kept.
type Override func(*Config)

// New starts from Default and applies each override in order, so later
// overrides win.
func New(overrides ...Override) Config {
	cfg := Default()
	for _, o := range overrides {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}

// Validate reports every inconsistent setting at once.
func (c Config) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	check(c.Road.Width > 0, "road.width must be positive, got %v", c.Road.Width)
	check(c.Road.Lanes > 0, "road.lanes must be positive, got %d", c.Road.Lanes)

	check(c.Spawn.LookaheadAhead > 0, "spawn.lookaheadAhead must be positive, got %v", c.Spawn.LookaheadAhead)
	check(c.Spawn.LookaheadBehind > 0, "spawn.lookaheadBehind must be positive, got %v", c.Spawn.LookaheadBehind)
	check(c.Spawn.ObstacleSpacing > 0, "spawn.obstacleSpacing must be positive, got %v", c.Spawn.ObstacleSpacing)

	check(c.Obstacles.MinSize > 0, "obstacles.minSize must be positive, got %v", c.Obstacles.MinSize)
	check(c.Obstacles.MaxSize >= c.Obstacles.MinSize, "obstacles.maxSize %v is below minSize %v", c.Obstacles.MaxSize, c.Obstacles.MinSize)
	check(c.Obstacles.WallGapMin > 0, "obstacles.wallGapMin must be positive, got %v", c.Obstacles.WallGapMin)
	check(c.Obstacles.WallGapMax >= c.Obstacles.WallGapMin, "obstacles.wallGapMax %v is below wallGapMin %v", c.Obstacles.WallGapMax, c.Obstacles.WallGapMin)
	check(c.Obstacles.WallGapMax < c.Road.Width, "obstacles.wallGapMax %v leaves no wall on a %v road", c.Obstacles.WallGapMax, c.Road.Width)
	check(c.Obstacles.WallThickness > 0, "obstacles.wallThickness must be positive, got %v", c.Obstacles.WallThickness)

	check(probability(c.PowerUps.Base) && probability(c.PowerUps.Max), "powerUps.base and powerUps.max must lie in [0, 1]")
	check(probability(c.Cyclists.Base) && probability(c.Cyclists.Max), "cyclists.base and cyclists.max must lie in [0, 1]")
	check(c.PowerUps.Max+c.Cyclists.Max <= 1, "powerUps.max + cyclists.max must not exceed 1, got %v", c.PowerUps.Max+c.Cyclists.Max)
	check(c.PowerUps.Radius > 0, "powerUps.radius must be positive, got %v", c.PowerUps.Radius)
	check(c.PowerUps.Multiplier >= 1, "powerUps.multiplier must be at least 1, got %v", c.PowerUps.Multiplier)
	check(c.PowerUps.DurationMs > 0, "powerUps.durationMs must be positive, got %v", c.PowerUps.DurationMs)

	check(c.Cyclists.Width > 0 && c.Cyclists.Height > 0, "cyclists.width and cyclists.height must be positive")
	check(c.Cyclists.Range >= 0, "cyclists.range must not be negative, got %v", c.Cyclists.Range)

	check(c.Session.MaxFrameMs > 0, "session.maxFrameMs must be positive, got %v", c.Session.MaxFrameMs)
	check(c.Session.DistancePerPoint > 0, "session.distancePerPoint must be positive, got %v", c.Session.DistancePerPoint)

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(problems...))
	}
	return nil
}

func probability(p float64) bool {
	return p >= 0 && p <= 1
}

// LoadYAML decodes a YAML document over the defaults and validates it.
// Keys missing from the document keep their default; unknown keys are
// rejected.
func LoadYAML(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a YAML config from path. An empty path yields the defaults.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadYAML(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
