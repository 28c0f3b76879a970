package render

import "fmt"

// Overlay layout on the reference grid
const (
	Player1Col = 7
	Player2Col = 73
	TimeCol    = 38

	LabelRow = 1
	ValueRow = 2

	TitleRow     = 11
	CountdownRow = 12
	ResultRow    = 13
	PromptRow    = 15
	BannerRow    = 15

	player1InstructionCol = 14
	player2InstructionCol = 53
	player1CreditCol      = 13
	player2CreditCol      = 51
	courseCreditCol       = TimeCol - 1

	// labelShift centers the player labels over their score column
	labelShift = 3
	// scoreWidth is blanked before redrawing a score
	scoreWidth = 3
)

// Fixed overlay text
const (
	TitleText     = "BIG HEAD SOCCER"
	StartPrompt   = "Press ENTER to start game"
	RestartPrompt = "Press ENTER to play again"
	GoalBanner    = "GOLAZO!!!"
	DrawText      = "Draw!!!"
	KickoffText   = "START!!!"
)

// WinText is the end-of-match message for a winner
func WinText(player int) string {
	return fmt.Sprintf("Player %d has won!!!", player)
}

// Scoreboard draws player labels, scores and the remaining match time
func (o *OSD) Scoreboard(p1, p2 int, clock string) {
	label := TextStyle(RgbLabel)
	o.Print(Player1Col-labelShift, LabelRow, "PLAYER 1", label)
	o.Print(Player2Col-labelShift, LabelRow, "PLAYER 2", label)
	o.Print(TimeCol, LabelRow, "TIME", label)

	o.ClearSpan(Player1Col, ValueRow, scoreWidth)
	o.ClearSpan(Player2Col, ValueRow, scoreWidth)
	o.Print(Player1Col, ValueRow, fmt.Sprintf("%d", p1), TextStyle(RgbPlayer1))
	o.Print(Player2Col, ValueRow, fmt.Sprintf("%d", p2), TextStyle(RgbPlayer2))
	o.Print(TimeCol, ValueRow, clock, TextStyle(RgbText))
}

// Instructions draws the control legend for both players
func (o *OSD) Instructions() {
	p1 := TextStyle(RgbPlayer1)
	p2 := TextStyle(RgbPlayer2)
	o.Print(player1InstructionCol, LabelRow, "Move:  A W D", p1)
	o.Print(player1InstructionCol, ValueRow, "Kick: SPACEBAR", p1)
	o.Print(player2InstructionCol, LabelRow, "Move: ← ↑ →", p2)
	o.Print(player2InstructionCol, ValueRow, "Kick:   P", p2)
}

// Credits draws the splash screen credits
func (o *OSD) Credits() {
	style := TextStyle(RgbLabel)
	o.Print(player1CreditCol, ValueRow, "Mauricio Herrera", style)
	o.Print(player2CreditCol, ValueRow, "Michael Rosales", style)
	o.Print(courseCreditCol, ValueRow, "ECE 4305", style)
}

// Title draws the game title
func (o *OSD) Title() {
	o.PrintCentered(TitleRow, TitleText, TextStyle(RgbTitle))
}
