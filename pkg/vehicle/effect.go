package vehicle

import "fmt"

// EffectKind identifies what an Effect changes on the car.
type EffectKind int

const (
	EffectSpeedMultiplier EffectKind = iota
	EffectScore
	EffectSize
)

func (k EffectKind) String() string {
	switch k {
	case EffectSpeedMultiplier:
		return "speed"
	case EffectScore:
		return "score"
	case EffectSize:
		return "size"
	default:
		return fmt.Sprintf("effect(%d)", int(k))
	}
}

// Effect is a modifier applied to a car. A Duration of 0 (milliseconds)
// means the effect is permanent.
type Effect struct {
	Kind      EffectKind
	Magnitude float64
	Duration  float64
}

// SpeedBoost multiplies the car's max speed for durationMs.
func SpeedBoost(multiplier, durationMs float64) Effect {
	return Effect{Kind: EffectSpeedMultiplier, Magnitude: multiplier, Duration: durationMs}
}

// ScoreBonus awards points through the car's score handler.
func ScoreBonus(points int) Effect {
	return Effect{Kind: EffectScore, Magnitude: float64(points)}
}

// Grow lengthens the car permanently.
func Grow(amount float64) Effect {
	return Effect{Kind: EffectSize, Magnitude: amount}
}

// ActiveEffect is an Effect stamped with the car clock time it was applied.
type ActiveEffect struct {
	Effect
	Start float64
}

// Expired reports whether a timed effect has run out at now.
func (a ActiveEffect) Expired(now float64) bool {
	return a.Duration > 0 && now-a.Start >= a.Duration
}

// Remaining returns the milliseconds left, or 0 for permanent effects.
func (a ActiveEffect) Remaining(now float64) float64 {
	if a.Duration <= 0 {
		return 0
	}
	if r := a.Duration - (now - a.Start); r > 0 {
		return r
	}
	return 0
}
