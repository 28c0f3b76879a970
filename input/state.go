package input

import "github.com/lixenwraith/head-soccer/engine"

// State is the logical input set for one frame
type State struct {
	held [ActionCount]bool
}

// Set marks an action held or released
func (s *State) Set(a Action, held bool) {
	if a < ActionCount {
		s.held[a] = held
	}
}

// Held reports whether an action is held
func (s State) Held(a Action) bool {
	return a < ActionCount && s.held[a]
}

// Merge returns the union of two states
func (s State) Merge(o State) State {
	for i := range s.held {
		s.held[i] = s.held[i] || o.held[i]
	}
	return s
}

// Controls projects the state onto per-player controls for the simulation
func (s State) Controls() engine.Controls {
	return engine.Controls{
		P1: engine.PlayerControls{
			Left:  s.Held(P1Left),
			Right: s.Held(P1Right),
			Jump:  s.Held(P1Jump),
			Kick:  s.Held(P1Kick),
		},
		P2: engine.PlayerControls{
			Left:  s.Held(P2Left),
			Right: s.Held(P2Right),
			Jump:  s.Held(P2Jump),
			Kick:  s.Held(P2Kick),
		},
	}
}
