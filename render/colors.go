package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the pitch and overlay
var (
	RgbSky   = tcell.NewRGBColor(20, 24, 48)    // Night sky
	RgbGrass = tcell.NewRGBColor(34, 139, 34)   // Forest green
	RgbTurf  = tcell.NewRGBColor(0, 100, 0)     // Dark turf below the line
	RgbPost  = tcell.NewRGBColor(235, 235, 235) // Off-white
	RgbNet   = tcell.NewRGBColor(150, 150, 150) // Gray

	RgbPlayer1 = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbPlayer2 = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbBall    = tcell.NewRGBColor(255, 255, 255) // White

	RgbText   = tcell.NewRGBColor(255, 255, 255) // White
	RgbLabel  = tcell.NewRGBColor(180, 180, 180) // Gray
	RgbBanner = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbTitle  = tcell.NewRGBColor(255, 165, 0)   // Orange
)

// DefaultStyle is the pitch background
var DefaultStyle = tcell.StyleDefault.Foreground(RgbText).Background(RgbSky)

// TextStyle returns an overlay style in the given color over the sky
func TextStyle(fg tcell.Color) tcell.Style {
	return DefaultStyle.Foreground(fg)
}
