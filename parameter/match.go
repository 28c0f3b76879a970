package parameter

// Match flow timing in milliseconds
const (
	FrameMs          = 30
	MatchDurationSec = 10

	SplashTickMs     = 20
	PromptFlashMs    = 700
	GoalBannerMs     = 1000
	CountdownShortMs = 200
	CountdownLongMs  = 600
	CountdownGapMs   = 400
	RestartFlashMs   = 700

	// KeyHoldMs keeps a terminal key pressed between auto-repeat events
	KeyHoldMs = 120
	// KeyHoldInitialMs covers the longer delay before auto-repeat starts
	KeyHoldInitialMs = 550
)
