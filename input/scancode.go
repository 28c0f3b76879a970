package input

// PS/2 set-2 prefixes
const (
	ScanBreak    byte = 0xF0
	ScanExtended byte = 0xE0
)

// DefaultScanTable maps set-2 make codes to actions
// Arrow keys share their codes with the keypad; the 0xE0 prefix is ignored
var DefaultScanTable = map[byte]Action{
	0x1C: P1Left,  // A
	0x23: P1Right, // D
	0x1D: P1Jump,  // W
	0x29: P1Kick,  // Space
	0x6B: P2Left,  // Left
	0x74: P2Right, // Right
	0x75: P2Jump,  // Up
	0x4D: P2Kick,  // P
	0x5A: Confirm, // Enter
	0x76: Quit,    // Esc
	0x3A: ToggleMute,
}

// ScanDecoder tracks key state from a raw scan-code stream
// Key state lives in the logical set only; raw codes never leave the decoder
type ScanDecoder struct {
	table    map[byte]Action
	pressed  map[byte]bool
	state    State
	breaking bool
}

// NewScanDecoder creates a decoder; nil uses DefaultScanTable
func NewScanDecoder(table map[byte]Action) *ScanDecoder {
	if table == nil {
		table = DefaultScanTable
	}
	return &ScanDecoder{
		table:   table,
		pressed: make(map[byte]bool),
	}
}

// Feed consumes one byte and returns the action on a make code
// Typematic repeats report continuous actions again; edge actions fire once per press
func (d *ScanDecoder) Feed(code byte) (Action, bool) {
	switch code {
	case ScanBreak:
		d.breaking = true
		return 0, false
	case ScanExtended:
		return 0, false
	}

	release := d.breaking
	d.breaking = false
	repeat := !release && d.pressed[code]
	d.pressed[code] = !release

	a, ok := d.table[code]
	if !ok {
		return 0, false
	}
	d.state.Set(a, d.anyPressed(a))
	if release || (repeat && !a.Continuous()) {
		return 0, false
	}
	return a, true
}

// anyPressed keeps an action held while any code bound to it is down
func (d *ScanDecoder) anyPressed(a Action) bool {
	for code, bound := range d.table {
		if bound == a && d.pressed[code] {
			return true
		}
	}
	return false
}

// State returns the held actions
func (d *ScanDecoder) State() State {
	return d.state
}

// Reset releases every key and clears a pending break prefix
func (d *ScanDecoder) Reset() {
	d.pressed = make(map[byte]bool)
	d.state = State{}
	d.breaking = false
}
