package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/head-soccer/parameter"
)

// Renderer draws the pixel playfield onto a terminal by scaling it into the cell grid
// At 80x30 one cell covers 8x16 pixels
type Renderer struct {
	screen  tcell.Screen
	width   int
	height  int
	sprites [SpriteCount]sprite
	osd     *OSD
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		width:  w,
		height: h,
		osd:    NewOSD(),
	}
}

// OSD returns the text overlay
func (r *Renderer) OSD() *OSD {
	return r.osd
}

// Resize picks up new terminal dimensions
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.screen.Sync()
}

// MoveSprite places a sprite by its top-left pixel and shows it
func (r *Renderer) MoveSprite(id SpriteID, x, y int) {
	if id >= SpriteCount {
		return
	}
	s := &r.sprites[id]
	s.x, s.y = x, y
	s.visible = true
}

// SetPose switches a sprite frame
func (r *Renderer) SetPose(id SpriteID, pose Pose) {
	if id < SpriteCount {
		r.sprites[id].pose = pose
	}
}

// Cell maps a playfield pixel to a terminal cell
func (r *Renderer) Cell(x, y int) (col, row int) {
	return x * r.width / parameter.ScreenWidth, y * r.height / parameter.ScreenHeight
}

// gridCell maps an overlay grid cell to a terminal cell
func (r *Renderer) gridCell(col, row int) (int, int) {
	return col * r.width / OSDCols, row * r.height / OSDRows
}

// Draw renders pitch, sprites and overlay, then flushes the screen
func (r *Renderer) Draw() {
	r.screen.Fill(' ', DefaultStyle)
	r.drawPitch()
	r.drawSprites()
	r.drawOSD()
	r.screen.Show()
}

// drawPitch draws the ground and both goals
func (r *Renderer) drawPitch() {
	_, groundRow := r.Cell(0, parameter.GroundLineY)
	grass := DefaultStyle.Background(RgbGrass)
	turf := DefaultStyle.Background(RgbTurf)
	for y := groundRow; y < r.height; y++ {
		style := turf
		if y == groundRow {
			style = grass
		}
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	r.drawGoal(parameter.LeftPostX, 0, groundRow)
	r.drawGoal(parameter.RightPostX, parameter.ScreenWidth-1, groundRow)
}

// drawGoal draws a post and the crossbar running to the screen edge
func (r *Renderer) drawGoal(postX, edgeX, groundRow int) {
	c0, top := r.Cell(postX, parameter.PostTopY)
	c1, _ := r.Cell(postX+parameter.PostWidth-1, parameter.PostTopY)
	edge, _ := r.Cell(edgeX, 0)

	post := DefaultStyle.Foreground(RgbPost)
	for y := top; y < groundRow; y++ {
		for x := c0; x <= c1; x++ {
			r.screen.SetContent(x, y, '█', nil, post)
		}
	}

	net := DefaultStyle.Foreground(RgbNet)
	lo, hi := min(edge, c0), max(edge, c1)
	for x := lo; x <= hi; x++ {
		if x < c0 || x > c1 {
			r.screen.SetContent(x, top, '═', nil, net)
		}
	}
}

func (r *Renderer) drawSprites() {
	for id := SpriteID(0); id < SpriteCount; id++ {
		s := r.sprites[id]
		if !s.visible {
			continue
		}
		style := spriteStyle(id)
		col, row := r.Cell(s.x, s.y)
		for dy, line := range frame(id, s.pose) {
			dx := 0
			for _, ch := range line {
				r.setCell(col+dx, row+dy, ch, style)
				dx++
			}
		}
	}
}

func (r *Renderer) drawOSD() {
	for row := 0; row < OSDRows; row++ {
		for col := 0; col < OSDCols; col++ {
			c := r.osd.cells[row][col]
			if c.r == 0 {
				continue
			}
			x, y := r.gridCell(col, row)
			r.setCell(x, y, c.r, c.style)
		}
	}
}

// setCell writes a cell if it lies on screen
func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func spriteStyle(id SpriteID) tcell.Style {
	switch id {
	case SpritePlayer1:
		return TextStyle(RgbPlayer1)
	case SpritePlayer2:
		return TextStyle(RgbPlayer2)
	default:
		return TextStyle(RgbBall).Bold(true)
	}
}
