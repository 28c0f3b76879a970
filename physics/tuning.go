package physics

import "github.com/lixenwraith/head-soccer/parameter"

// Tuning holds the per-frame physics constants
// Loaded once at startup and never mutated afterwards
type Tuning struct {
	Gravity       float64 `toml:"gravity"`
	BounceDamping float64 `toml:"bounce_damping"`
	Friction      float64 `toml:"friction"`
	BounceEpsilon float64 `toml:"bounce_epsilon"`
	KickSpeed     float64 `toml:"kick_speed"`
	KickLift      float64 `toml:"kick_lift"`
	CooldownMs    int64   `toml:"cooldown_ms"`
}

// DefaultTuning returns the arcade defaults
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:       parameter.Gravity,
		BounceDamping: parameter.BounceDamping,
		Friction:      parameter.Friction,
		BounceEpsilon: parameter.BounceEpsilon,
		KickSpeed:     parameter.KickSpeed,
		KickLift:      parameter.KickLift,
		CooldownMs:    parameter.CollisionCooldownMs,
	}
}
