package parameter

// Default physics tuning, per frame

// Integration
const (
	Gravity       = 0.5  // Added to vertical velocity every frame
	BounceDamping = 0.7  // Fraction of velocity kept on ground/wall bounce
	Friction      = 0.98 // Horizontal ball velocity multiplier per frame

	// BounceEpsilon zeroes vertical velocity after a weak ground bounce
	BounceEpsilon = 1.0
)

// Contact geometry
const (
	// PlayerRadiusScale shrinks the half-width circle toward body width
	PlayerRadiusScale = 0.8

	// HeadZone is how far below the player top a ball top may sit and still count as a header
	HeadZone = 5
)

// Contact impulses
const (
	KickSpeed = 15.0
	KickLift  = -6.0

	// KickJitter is the half-range of the integer jitter added to kick speed
	KickJitter = 1

	HeadBounceSpeed = 3.0
	HeadBounceLift  = -6.0
	BodyBounceSpeed = 2.0
	BodyBounceLift  = -2.5

	// CollisionCooldownMs gates passive bounces shared across both players
	CollisionCooldownMs = 200
)

// Player controls
const (
	MoveStep     = 5
	JumpVelocity = -10.0 * 0.75
)
