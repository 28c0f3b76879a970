package mode

import (
	"errors"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/head-soccer/audio"
	"github.com/lixenwraith/head-soccer/config"
	"github.com/lixenwraith/head-soccer/core"
	"github.com/lixenwraith/head-soccer/engine"
	"github.com/lixenwraith/head-soccer/input"
	"github.com/lixenwraith/head-soccer/render"
)

// ErrQuit ends the session from any phase
var ErrQuit = errors.New("quit requested")

// Clock is the time source driving the flow: frame timing, blocking notes and flashes
type Clock interface {
	core.Clock
	core.Sleeper
}

// Options wires a session to its boundary adapters
type Options struct {
	Config   *config.Config
	Clock    Clock
	Renderer *render.Renderer
	Events   <-chan tcell.Event
	Scan     <-chan byte // Optional raw PS/2 stream
	Voice    audio.Voice
	Rand     core.Rand
}

// Session runs the splash, countdown, match and finale loop
type Session struct {
	cfg      *config.Config
	clock    Clock
	renderer *render.Renderer
	osd      *render.OSD

	events  <-chan tcell.Event
	scan    <-chan byte
	keys    *input.Translator
	decoder *input.ScanDecoder

	voice     audio.Voice
	player    *audio.Player
	effects   *audio.Effects
	sequencer *audio.Sequencer
	splash    core.Song
	intro     core.Song

	game *engine.Game
	quit bool
}

// NewSession validates the configuration and builds the game around the adapters
func NewSession(o Options) (*Session, error) {
	cfg := o.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if o.Clock == nil || o.Renderer == nil || o.Events == nil {
		return nil, errors.New("session: clock, renderer and events are required")
	}

	km, err := cfg.KeyMap()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	for a := input.Action(0); a < input.ActionCount; a++ {
		log.Printf("keys: %s = %q", a, km.Binding(a))
	}
	splash, err := audio.SongByName(cfg.Audio.SplashSong)
	if err != nil {
		return nil, fmt.Errorf("session: splash song: %w", err)
	}
	intro, err := audio.SongByName(cfg.Audio.IntroSong)
	if err != nil {
		return nil, fmt.Errorf("session: intro song: %w", err)
	}

	voice := o.Voice
	if voice == nil {
		voice = &audio.NullVoice{}
	}
	player := audio.NewVoicePlayer(voice, o.Clock)
	effects := audio.NewEffects(player)

	s := &Session{
		cfg:       cfg,
		clock:     o.Clock,
		renderer:  o.Renderer,
		osd:       o.Renderer.OSD(),
		events:    o.Events,
		scan:      o.Scan,
		keys:      input.NewTranslator(km),
		decoder:   input.NewScanDecoder(nil),
		voice:     voice,
		player:    player,
		effects:   effects,
		sequencer: audio.NewVoiceSequencer(o.Clock, voice),
		splash:    splash,
		intro:     intro,
		game:      engine.NewGame(cfg.Physics, o.Rand, effects),
	}
	s.game.SetGoalHook(s.onGoal)
	return s, nil
}

// Game exposes the simulation for inspection
func (s *Session) Game() *engine.Game {
	return s.game
}

// Run plays rounds until the player quits or the event stream closes
func (s *Session) Run() error {
	for {
		if err := s.Round(); err != nil {
			if errors.Is(err, ErrQuit) {
				log.Printf("session: quit")
				return nil
			}
			return err
		}
	}
}

// Round plays one full cycle: splash, intro, countdown, match, finale
func (s *Session) Round() error {
	s.game.ResetMatch()
	s.keys.Reset()
	s.syncSprites()

	if err := s.Splash(); err != nil {
		return err
	}
	if err := s.Countdown(); err != nil {
		return err
	}

	s.game.State.Kickoff(false)
	s.syncSprites()
	if err := s.Match(); err != nil {
		return err
	}
	return s.Finale()
}

// poll drains pending input without blocking
// Returns true when confirm was pressed; later events stay queued
func (s *Session) poll() bool {
	now := s.clock.NowMs()
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				s.quit = true
				return false
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a, ok := s.keys.Key(ev, now); ok && s.edge(a) {
					return true
				}
			case *tcell.EventResize:
				s.renderer.Resize()
			}
		case code, ok := <-s.scan:
			if !ok {
				s.scan = nil
				continue
			}
			if a, ok := s.decoder.Feed(code); ok && s.edge(a) {
				return true
			}
		default:
			return false
		}
		if s.quit {
			return false
		}
	}
}

// flush drains all pending input, discarding confirms; quit and mute still apply
func (s *Session) flush() {
	for s.poll() {
	}
}

// edge applies a one-shot action and reports a confirm
func (s *Session) edge(a input.Action) bool {
	switch a {
	case input.Confirm:
		return true
	case input.Quit:
		s.quit = true
	case input.ToggleMute:
		s.toggleMute()
	}
	return false
}

func (s *Session) toggleMute() {
	m, ok := s.voice.(audio.Muter)
	if !ok {
		return
	}
	m.SetMuted(!m.Muted())
	log.Printf("audio: muted=%v", m.Muted())
}

// checkQuit converts a pending quit into ErrQuit
func (s *Session) checkQuit() error {
	if s.quit {
		return ErrQuit
	}
	return nil
}

// syncSprites pushes actor positions and kick poses to the renderer
func (s *Session) syncSprites() {
	st := s.game.State
	s.renderer.MoveSprite(render.SpritePlayer1, st.P1.X, st.P1.Y)
	s.renderer.MoveSprite(render.SpritePlayer2, st.P2.X, st.P2.Y)
	s.renderer.MoveSprite(render.SpriteBall, st.Ball.X, st.Ball.Y)
	s.renderer.SetPose(render.SpritePlayer1, pose(st.P1Kicking))
	s.renderer.SetPose(render.SpritePlayer2, pose(st.P2Kicking))
}

func pose(kicking bool) render.Pose {
	if kicking {
		return render.PoseKick
	}
	return render.PoseStand
}
