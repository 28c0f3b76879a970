package render

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Reference character grid for overlay text, independent of terminal size
const (
	OSDCols = 80
	OSDRows = 30
)

type osdCell struct {
	r     rune
	style tcell.Style
}

// OSD is the text layer drawn over the pitch
// Text persists across frames until cleared
type OSD struct {
	cells [OSDRows][OSDCols]osdCell
}

// NewOSD creates an empty overlay
func NewOSD() *OSD {
	return &OSD{}
}

// Print writes text starting at a grid cell, clipping at the edges
func (o *OSD) Print(col, row int, text string, style tcell.Style) {
	if row < 0 || row >= OSDRows {
		return
	}
	for _, r := range text {
		if col >= OSDCols {
			return
		}
		if col >= 0 {
			o.cells[row][col] = osdCell{r: r, style: style}
		}
		col++
	}
}

// PrintCentered writes text centered on the grid
func (o *OSD) PrintCentered(row int, text string, style tcell.Style) {
	o.Print((OSDCols-utf8.RuneCountInString(text))/2, row, text, style)
}

// ClearRow blanks one grid row
func (o *OSD) ClearRow(row int) {
	if row < 0 || row >= OSDRows {
		return
	}
	o.cells[row] = [OSDCols]osdCell{}
}

// ClearSpan blanks n cells starting at a grid cell
func (o *OSD) ClearSpan(col, row, n int) {
	if row < 0 || row >= OSDRows {
		return
	}
	for c := max(col, 0); c < col+n && c < OSDCols; c++ {
		o.cells[row][c] = osdCell{}
	}
}

// Clear blanks the whole overlay
func (o *OSD) Clear() {
	o.cells = [OSDRows][OSDCols]osdCell{}
}

// Text returns a row as a string, blanks as spaces, trailing blanks trimmed
func (o *OSD) Text(row int) string {
	if row < 0 || row >= OSDRows {
		return ""
	}
	var b strings.Builder
	for _, c := range o.cells[row] {
		if c.r == 0 {
			b.WriteRune(' ')
		} else {
			b.WriteRune(c.r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
