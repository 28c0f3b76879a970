package parameter

// Playfield geometry in pixels, fixed for the process lifetime

// Screen
const (
	ScreenWidth  = 640
	ScreenHeight = 480

	// GroundOffset is the distance of the invisible ground line from the screen bottom
	GroundOffset = 40
	GroundLineY  = ScreenHeight - GroundOffset
)

// Actors
const (
	PlayerWidth  = 32
	PlayerHeight = 32
	BallWidth    = 16
	BallHeight   = 16

	PlayerGroundY = ScreenHeight - GroundOffset - PlayerHeight
	BallGroundY   = ScreenHeight - GroundOffset - BallHeight
)

// Goalposts: anchored at the screen edges, standing on the ground line
const (
	PostWidth  = 8
	PostHeight = 80
	PostMargin = 10

	LeftPostX  = PostMargin
	RightPostX = ScreenWidth - PostMargin - PostWidth
	PostTopY   = GroundLineY - PostHeight

	// Goal mouth boundaries are the inner edges of the posts
	PostInnerLeft  = LeftPostX + PostWidth
	PostInnerRight = RightPostX
)

// Kickoff layout
const (
	Player1StartX = 50
	Player2StartX = ScreenWidth - 50 - PlayerWidth
	BallStartX    = ScreenWidth/2 - BallWidth/2
	BallAirborneY = ScreenHeight/2 - BallHeight/2

	// BallDropVelocity is the initial downward speed of an airborne kickoff ball
	BallDropVelocity = 5.0
)
