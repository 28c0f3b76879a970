package mode

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/head-soccer/audio"
	"github.com/lixenwraith/head-soccer/config"
	"github.com/lixenwraith/head-soccer/core"
	"github.com/lixenwraith/head-soccer/engine"
	"github.com/lixenwraith/head-soccer/input"
	"github.com/lixenwraith/head-soccer/parameter"
	"github.com/lixenwraith/head-soccer/physics"
	"github.com/lixenwraith/head-soccer/render"
)

// scriptedClock delivers queued events once mock time passes their timestamp
type scriptedClock struct {
	*engine.MockClock
	events chan tcell.Event
	script []scripted
}

type scripted struct {
	atMs int64
	ev   tcell.Event
}

func (c *scriptedClock) SleepMs(ms int64) {
	c.MockClock.SleepMs(ms)
	now := c.NowMs()
	for len(c.script) > 0 && c.script[0].atMs <= now {
		c.events <- c.script[0].ev
		c.script = c.script[1:]
	}
}

// testVoice is an always-idle voice that counts triggers
type testVoice struct {
	triggers int
	muted    bool
}

func (v *testVoice) SetFrequency(int)         {}
func (v *testVoice) Configure(audio.Envelope) {}
func (v *testVoice) Trigger()                 { v.triggers++ }
func (v *testVoice) IsIdle() bool             { return true }
func (v *testVoice) SetMuted(m bool)          { v.muted = m }
func (v *testVoice) Muted() bool              { return v.muted }

type harness struct {
	session *Session
	clock   *scriptedClock
	events  chan tcell.Event
	scan    chan byte
	voice   *testVoice
	screen  tcell.SimulationScreen
}

func newHarness(t *testing.T, cfg *config.Config, script ...scripted) *harness {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen to init, got %v", err)
	}
	screen.SetSize(render.OSDCols, render.OSDRows)
	t.Cleanup(screen.Fini)

	events := make(chan tcell.Event, 64)
	scan := make(chan byte, 64)
	clock := &scriptedClock{MockClock: engine.NewMockClock(0), events: events, script: script}
	voice := &testVoice{}

	if cfg == nil {
		cfg = config.Default()
	}
	s, err := NewSession(Options{
		Config:   cfg,
		Clock:    clock,
		Renderer: render.NewRenderer(screen),
		Events:   events,
		Scan:     scan,
		Voice:    voice,
	})
	if err != nil {
		t.Fatalf("Expected session, got %v", err)
	}
	return &harness{session: s, clock: clock, events: events, scan: scan, voice: voice, screen: screen}
}

func key(k tcell.Key) tcell.Event {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func shortMatch(seconds int) *config.Config {
	cfg := config.Default()
	cfg.Match.Seconds = seconds
	return cfg
}

func TestNewSessionErrors(t *testing.T) {
	if _, err := NewSession(Options{}); err == nil {
		t.Error("Expected error without adapters")
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen to init, got %v", err)
	}
	defer screen.Fini()

	cfg := config.Default()
	cfg.Audio.IntroSong = "elevator"
	_, err := NewSession(Options{
		Config:   cfg,
		Clock:    engine.NewMockClock(0),
		Renderer: render.NewRenderer(screen),
		Events:   make(chan tcell.Event),
	})
	if !errors.Is(err, audio.ErrUnknownSong) {
		t.Errorf("Expected ErrUnknownSong, got %v", err)
	}
}

func TestRunQuitAtSplash(t *testing.T) {
	h := newHarness(t, nil)
	h.events <- key(tcell.KeyEscape)

	if err := h.session.Run(); err != nil {
		t.Fatalf("Expected clean quit, got %v", err)
	}
	if h.voice.triggers != 0 {
		t.Errorf("Expected no music before the splash loop, got %d triggers", h.voice.triggers)
	}
}

func TestRunEventsClosed(t *testing.T) {
	h := newHarness(t, nil)
	close(h.events)

	if err := h.session.Run(); err != nil {
		t.Fatalf("Expected closed event stream to end the session, got %v", err)
	}
}

func TestSplashConfirm(t *testing.T) {
	h := newHarness(t, nil, scripted{atMs: 1000, ev: key(tcell.KeyEnter)})

	if err := h.session.Splash(); err != nil {
		t.Fatalf("Expected splash to finish, got %v", err)
	}

	if now := h.clock.NowMs(); now < 1000+audio.MarioIntro.DurationMs() {
		t.Errorf("Expected intro to play after confirm, clock at %d", now)
	}
	if h.voice.triggers == 0 {
		t.Error("Expected splash and intro notes to trigger the voice")
	}
	for row := 0; row < render.OSDRows; row++ {
		if got := h.session.osd.Text(row); got != "" {
			t.Errorf("Expected overlay cleared before countdown, row %d is %q", row, got)
		}
	}
}

func TestSplashIgnoresQueuedConfirms(t *testing.T) {
	h := newHarness(t, nil, scripted{atMs: 1000, ev: key(tcell.KeyEscape)})

	// Confirms left over from the previous round, from both input sources
	h.events <- key(tcell.KeyEnter)
	h.events <- key(tcell.KeyEnter)
	h.scan <- 0x5A
	h.scan <- input.ScanBreak
	h.scan <- 0x5A
	h.scan <- 0x5A

	if err := h.session.Splash(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Expected splash to wait for a fresh confirm, got %v", err)
	}
	if now := h.clock.NowMs(); now < 1000 {
		t.Errorf("Expected splash to run until the quit, clock at %d", now)
	}
}

func TestCountdownTiming(t *testing.T) {
	h := newHarness(t, nil)

	if err := h.session.Countdown(); err != nil {
		t.Fatalf("Expected countdown to finish, got %v", err)
	}

	short := int64(parameter.BeepShortMs + parameter.CountdownShortMs + parameter.CountdownGapMs)
	long := int64(parameter.BeepLongMs + parameter.CountdownLongMs + parameter.CountdownGapMs)
	if total, _ := h.clock.Slept(); total != 3*short+long {
		t.Errorf("Expected %d ms of countdown, got %d", 3*short+long, total)
	}
	if h.voice.triggers != 4 {
		t.Errorf("Expected 4 beeps, got %d", h.voice.triggers)
	}
}

func TestCountdownQuit(t *testing.T) {
	h := newHarness(t, nil, scripted{atMs: 1, ev: key(tcell.KeyEscape)})

	if err := h.session.Countdown(); !errors.Is(err, ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestMatchFullTime(t *testing.T) {
	h := newHarness(t, shortMatch(1))

	if err := h.session.Match(); err != nil {
		t.Fatalf("Expected match to end, got %v", err)
	}
	if now := h.clock.NowMs(); now < 1000 {
		t.Errorf("Expected at least one second of play, clock at %d", now)
	}
	if p1, p2 := h.session.game.State.Score(); p1 != 0 || p2 != 0 {
		t.Errorf("Expected 0-0, got %d-%d", p1, p2)
	}
	if got := h.session.osd.Text(render.ValueRow); !strings.Contains(got, "00:00") {
		t.Errorf("Expected expired clock on the scoreboard, got %q", got)
	}
	if got := h.session.osd.Text(render.LabelRow); !strings.Contains(got, "PLAYER 1") {
		t.Errorf("Expected labels on the scoreboard, got %q", got)
	}
}

func TestMatchGoal(t *testing.T) {
	h := newHarness(t, shortMatch(2))
	h.session.game.State.Ball = physics.Ball{X: parameter.PostInnerRight + 8, Y: 300}

	if err := h.session.Match(); err != nil {
		t.Fatalf("Expected match to end, got %v", err)
	}

	if p1, p2 := h.session.game.State.Score(); p1 != 1 || p2 != 0 {
		t.Errorf("Expected 1-0, got %d-%d", p1, p2)
	}

	// Fanfare and banner hold both block the frame loop
	fanfare := audio.GoalTune.DurationMs()
	total, _ := h.clock.Slept()
	if total < fanfare+parameter.GoalBannerMs {
		t.Errorf("Expected goal pause of at least %d ms, slept %d", fanfare+parameter.GoalBannerMs, total)
	}
	if got := h.session.osd.Text(render.BannerRow); got != "" {
		t.Errorf("Expected banner cleared, got %q", got)
	}
}

func TestMatchKeyboardControls(t *testing.T) {
	h := newHarness(t, shortMatch(1))
	h.events <- runeKey('d')

	if err := h.session.Match(); err != nil {
		t.Fatalf("Expected match to end, got %v", err)
	}

	p1, _ := h.session.game.State.Players()
	if p1.X <= parameter.Player1StartX {
		t.Errorf("Expected player 1 to move right, got x=%d", p1.X)
	}
	// Hold lapses without auto-repeat, so the walk stops well short of the ball
	if p1.X > parameter.Player1StartX+parameter.MoveStep*(parameter.KeyHoldInitialMs/parameter.FrameMs+1) {
		t.Errorf("Expected hold window to end the walk, got x=%d", p1.X)
	}
}

func TestMatchScanCodes(t *testing.T) {
	h := newHarness(t, shortMatch(1))
	h.scan <- 0x74 // Right arrow make, never released

	if err := h.session.Match(); err != nil {
		t.Fatalf("Expected match to end, got %v", err)
	}

	_, p2 := h.session.game.State.Players()
	if p2.X != parameter.ScreenWidth-parameter.PlayerWidth {
		t.Errorf("Expected player 2 held right against the wall, got x=%d", p2.X)
	}
}

func TestMuteToggle(t *testing.T) {
	h := newHarness(t, nil)
	h.events <- runeKey('m')
	h.events <- key(tcell.KeyEscape)

	if err := h.session.Run(); err != nil {
		t.Fatalf("Expected clean quit, got %v", err)
	}
	if !h.voice.muted {
		t.Error("Expected m to mute the voice")
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		p1, p2 int
		msg    string
		theme  core.Song
	}{
		{2, 1, "Player 1 has won!!!", audio.LuffyTheme},
		{0, 3, "Player 2 has won!!!", audio.LuffyTheme},
		{1, 1, "Draw!!!", audio.ZoroTheme},
	}

	for _, tt := range tests {
		msg, theme := Verdict(tt.p1, tt.p2)
		if msg != tt.msg {
			t.Errorf("%d-%d: Expected %q, got %q", tt.p1, tt.p2, tt.msg, msg)
		}
		if len(theme) != len(tt.theme) || theme.DurationMs() != tt.theme.DurationMs() {
			t.Errorf("%d-%d: Expected theme of %d notes, got %d", tt.p1, tt.p2, len(tt.theme), len(theme))
		}
	}
}

func TestFinaleRestart(t *testing.T) {
	h := newHarness(t, nil)
	h.session.game.State.AddGoal(core.Player2)

	// Queued during the theme, read by the restart prompt
	h.events <- key(tcell.KeyEnter)

	if err := h.session.Finale(); err != nil {
		t.Fatalf("Expected restart, got %v", err)
	}

	want := audio.LuffyTheme.DurationMs() + parameter.RestartFlashMs
	if total, _ := h.clock.Slept(); total != want {
		t.Errorf("Expected theme plus one flash (%d ms), got %d", want, total)
	}
	if h.voice.triggers != len(audio.LuffyTheme)-rests(audio.LuffyTheme) {
		t.Errorf("Expected one trigger per sounding note, got %d", h.voice.triggers)
	}
}

func TestFinaleQuit(t *testing.T) {
	h := newHarness(t, nil)
	h.events <- key(tcell.KeyEscape)

	if err := h.session.Finale(); !errors.Is(err, ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
	if got := h.session.osd.Text(render.ResultRow); !strings.Contains(got, render.DrawText) {
		t.Errorf("Expected draw message shown, got %q", got)
	}
}

func TestFullRound(t *testing.T) {
	h := newHarness(t, shortMatch(1),
		scripted{atMs: 500, ev: key(tcell.KeyEnter)},
		scripted{atMs: 100_000, ev: key(tcell.KeyEnter)},
		scripted{atMs: 100_000, ev: key(tcell.KeyEscape)},
	)

	if err := h.session.Run(); err != nil {
		t.Fatalf("Expected clean quit after one round, got %v", err)
	}
	if now := h.clock.NowMs(); now < 100_000 {
		t.Errorf("Expected session to reach the restart prompt, clock at %d", now)
	}

	// Second round reset the match before the quit
	if p1, p2 := h.session.game.State.Score(); p1 != 0 || p2 != 0 {
		t.Errorf("Expected scores reset for the new round, got %d-%d", p1, p2)
	}
	if b := h.session.game.State.BallState(); b.Y != parameter.BallGroundY || b.VY != 0 {
		t.Errorf("Expected grounded kickoff for the new round, got %+v", b)
	}
}

func rests(s core.Song) int {
	n := 0
	for _, note := range s {
		if note.IsRest() {
			n++
		}
	}
	return n
}
