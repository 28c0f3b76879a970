package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/head-soccer/parameter"
)

// Translator turns terminal key events into held actions
// Terminals report presses and auto-repeats but no releases, so a continuous action
// stays held until its hold window lapses without a repeat
type Translator struct {
	keys    *KeyMap
	expires [ActionCount]int64
}

// NewTranslator creates a translator over a keymap; nil uses the default layout
func NewTranslator(km *KeyMap) *Translator {
	if km == nil {
		km = DefaultKeyMap()
	}
	return &Translator{keys: km}
}

// Key records a key event and returns its bound action
// Every action refreshes its hold window; edge actions report only the first press,
// auto-repeats inside the window are swallowed
func (t *Translator) Key(ev *tcell.EventKey, nowMs int64) (Action, bool) {
	a, ok := t.keys.Lookup(KeyFromEvent(ev))
	if !ok {
		return 0, false
	}

	// First press waits out the terminal's repeat delay
	repeat := t.expires[a] > nowMs
	hold := int64(parameter.KeyHoldInitialMs)
	if repeat {
		hold = parameter.KeyHoldMs
	}
	t.expires[a] = nowMs + hold

	if repeat && !a.Continuous() {
		return 0, false
	}
	return a, true
}

// State returns the continuous actions held at nowMs
func (t *Translator) State(nowMs int64) State {
	var s State
	for a := Action(0); a < ActionCount; a++ {
		if a.Continuous() && t.expires[a] > nowMs {
			s.Set(a, true)
		}
	}
	return s
}

// Reset releases everything
func (t *Translator) Reset() {
	t.expires = [ActionCount]int64{}
}
