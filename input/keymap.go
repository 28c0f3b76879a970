package input

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Key identifies a terminal key: a special key, or KeyRune with its lowercased rune
type Key struct {
	Code tcell.Key
	Rune rune
}

// RuneKey returns the key for a printable character
func RuneKey(r rune) Key {
	return Key{Code: tcell.KeyRune, Rune: unicode.ToLower(r)}
}

// String returns the config name of a key, the first named alias in sorted order
func (k Key) String() string {
	for _, n := range sortedKeyNames() {
		if keyNames[n] == k {
			return n
		}
	}
	if k.Code == tcell.KeyRune {
		return string(k.Rune)
	}
	return fmt.Sprintf("key(%d)", k.Code)
}

// SpecialKey returns the key for a non-printable key
func SpecialKey(k tcell.Key) Key {
	return Key{Code: k}
}

// KeyFromEvent normalizes a tcell key event
func KeyFromEvent(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return RuneKey(ev.Rune())
	}
	return SpecialKey(ev.Key())
}

// Named keys for config files, besides single characters
var keyNames = map[string]Key{
	"space":     RuneKey(' '),
	"left":      SpecialKey(tcell.KeyLeft),
	"right":     SpecialKey(tcell.KeyRight),
	"up":        SpecialKey(tcell.KeyUp),
	"down":      SpecialKey(tcell.KeyDown),
	"enter":     SpecialKey(tcell.KeyEnter),
	"esc":       SpecialKey(tcell.KeyEscape),
	"escape":    SpecialKey(tcell.KeyEscape),
	"tab":       SpecialKey(tcell.KeyTab),
	"backspace": SpecialKey(tcell.KeyBackspace2),
	"ctrl+c":    SpecialKey(tcell.KeyCtrlC),
}

// ParseKey resolves a config key name: a single character or a named key
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNames[n]; ok {
		return k, nil
	}
	runes := []rune(n)
	if len(runes) == 1 && unicode.IsPrint(runes[0]) {
		return RuneKey(runes[0]), nil
	}
	return Key{}, fmt.Errorf("%w: %q (expected single character or one of %s)", ErrUnknownKey, name, strings.Join(sortedKeyNames(), ", "))
}

func sortedKeyNames() []string {
	names := make([]string, 0, len(keyNames))
	for n := range keyNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// KeyMap binds terminal keys to logical actions
type KeyMap struct {
	bindings map[Key]Action
}

// DefaultKeyMap returns the arcade layout: A/D/W/Space and arrows/P, Enter to confirm
func DefaultKeyMap() *KeyMap {
	return &KeyMap{bindings: map[Key]Action{
		RuneKey('a'):                P1Left,
		RuneKey('d'):                P1Right,
		RuneKey('w'):                P1Jump,
		RuneKey(' '):                P1Kick,
		SpecialKey(tcell.KeyLeft):   P2Left,
		SpecialKey(tcell.KeyRight):  P2Right,
		SpecialKey(tcell.KeyUp):     P2Jump,
		RuneKey('p'):                P2Kick,
		SpecialKey(tcell.KeyEnter):  Confirm,
		SpecialKey(tcell.KeyEscape): Quit,
		SpecialKey(tcell.KeyCtrlC):  Quit,
		RuneKey('m'):                ToggleMute,
	}}
}

// Lookup returns the action bound to a key
func (km *KeyMap) Lookup(k Key) (Action, bool) {
	a, ok := km.bindings[k]
	return a, ok
}

// Keys returns the keys bound to an action
func (km *KeyMap) Keys(a Action) []Key {
	var keys []Key
	for k, bound := range km.bindings {
		if bound == a {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Code != keys[j].Code {
			return keys[i].Code < keys[j].Code
		}
		return keys[i].Rune < keys[j].Rune
	})
	return keys
}

// Apply rebinds actions from action name to comma-separated key names
// Each listed action loses its previous keys; Ctrl+C always quits
func (km *KeyMap) Apply(overrides map[string]string) error {
	names := make([]string, 0, len(overrides))
	for n := range overrides {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := ActionByName(name)
		if err != nil {
			return fmt.Errorf("[keys] %w", err)
		}

		var keys []Key
		for _, part := range strings.Split(overrides[name], ",") {
			k, err := ParseKey(part)
			if err != nil {
				return fmt.Errorf("[keys] %s: %w", name, err)
			}
			keys = append(keys, k)
		}

		for k, bound := range km.bindings {
			if bound == action {
				delete(km.bindings, k)
			}
		}
		for _, k := range keys {
			if prev, ok := km.bindings[k]; ok && prev != action {
				log.Printf("keymap: %q rebound from %s to %s", overrides[name], prev, action)
			}
			km.bindings[k] = action
		}
	}

	km.bindings[SpecialKey(tcell.KeyCtrlC)] = Quit
	return nil
}

// Binding returns the keys of an action in the comma-separated form Apply accepts
func (km *KeyMap) Binding(a Action) string {
	keys := km.Keys(a)
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
