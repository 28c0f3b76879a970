package input

import (
	"errors"
	"fmt"
	"strings"
)

// Action is a logical input, decoupled from any physical key
type Action uint8

const (
	P1Left Action = iota
	P1Right
	P1Jump
	P1Kick
	P2Left
	P2Right
	P2Jump
	P2Kick
	Confirm
	Quit
	ToggleMute
	ActionCount
)

// Sentinel errors
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

var actionNames = [ActionCount]string{
	P1Left:     "p1_left",
	P1Right:    "p1_right",
	P1Jump:     "p1_jump",
	P1Kick:     "p1_kick",
	P2Left:     "p2_left",
	P2Right:    "p2_right",
	P2Jump:     "p2_jump",
	P2Kick:     "p2_kick",
	Confirm:    "confirm",
	Quit:       "quit",
	ToggleMute: "toggle_mute",
}

func (a Action) String() string {
	if a < ActionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Continuous reports whether the action is held over frames rather than fired once
func (a Action) Continuous() bool {
	return a <= P2Kick
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
