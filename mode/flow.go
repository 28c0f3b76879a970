package mode

import (
	"github.com/lixenwraith/head-soccer/audio"
	"github.com/lixenwraith/head-soccer/core"
	"github.com/lixenwraith/head-soccer/parameter"
	"github.com/lixenwraith/head-soccer/render"
)

// countdownSteps are shown in order before kickoff; the last one gets the long beep
var countdownSteps = []string{"3", "2", "1", render.KickoffText}

// Splash shows the title over the looping splash theme until confirm, then plays the intro once
func (s *Session) Splash() error {
	// Keys pressed before the splash do not start the game
	s.flush()
	if err := s.checkQuit(); err != nil {
		return err
	}

	s.osd.Clear()
	s.osd.Credits()
	s.osd.Title()

	prompt := render.TextStyle(render.RgbBanner)
	show := true
	lastFlash := s.clock.NowMs()
	s.sequencer.Start(s.splash, true)

	for {
		now := s.clock.NowMs()
		if now-lastFlash >= parameter.PromptFlashMs {
			if show {
				s.osd.PrintCentered(render.PromptRow, render.StartPrompt, prompt)
			} else {
				s.osd.ClearRow(render.PromptRow)
			}
			show = !show
			lastFlash = now
		}

		s.sequencer.Tick()
		confirmed := s.poll()
		if err := s.checkQuit(); err != nil {
			s.sequencer.Stop()
			return err
		}
		s.renderer.Draw()
		if confirmed {
			break
		}
		s.clock.SleepMs(parameter.SplashTickMs)
	}

	s.sequencer.Start(s.intro, false)
	for !s.sequencer.IsDone() {
		s.sequencer.Tick()
		s.clock.SleepMs(parameter.SplashTickMs)
	}

	s.osd.Clear()
	s.renderer.Draw()
	return nil
}

// Countdown flashes 3, 2, 1, START!!! with a beep each
func (s *Session) Countdown() error {
	style := render.TextStyle(render.RgbPlayer1)
	for i, msg := range countdownSteps {
		s.osd.Clear()
		s.osd.PrintCentered(render.CountdownRow, msg, style)
		s.renderer.Draw()

		s.effects.Countdown(i)
		if i < len(countdownSteps)-1 {
			s.clock.SleepMs(parameter.CountdownShortMs)
		} else {
			s.clock.SleepMs(parameter.CountdownLongMs)
		}

		s.osd.Clear()
		s.renderer.Draw()
		s.clock.SleepMs(parameter.CountdownGapMs)

		s.poll()
		if err := s.checkQuit(); err != nil {
			return err
		}
	}
	return nil
}

// Verdict returns the end-of-match message and the theme that accompanies it
func Verdict(p1, p2 int) (string, core.Song) {
	switch {
	case p1 > p2:
		return render.WinText(1), audio.LuffyTheme
	case p2 > p1:
		return render.WinText(2), audio.LuffyTheme
	default:
		return render.DrawText, audio.ZoroTheme
	}
}

// Finale flashes the result with each note of the theme, then alternates it with
// the restart prompt until confirm
// Input is not read while the theme plays; keys queue for the prompt
func (s *Session) Finale() error {
	msg, theme := Verdict(s.game.State.Score())
	style := render.TextStyle(render.RgbGrass)

	s.player.PlaySong(theme, func(i int) {
		if i%2 == 0 {
			s.osd.PrintCentered(render.ResultRow, msg, style)
		} else {
			s.osd.ClearRow(render.ResultRow)
		}
		s.renderer.Draw()
	})

	show := true
	for {
		if show {
			s.osd.PrintCentered(render.ResultRow, msg, style)
			s.osd.PrintCentered(render.PromptRow, render.RestartPrompt, style)
		} else {
			s.osd.ClearRow(render.ResultRow)
			s.osd.ClearRow(render.PromptRow)
		}
		s.renderer.Draw()
		show = !show
		s.clock.SleepMs(parameter.RestartFlashMs)

		confirmed := s.poll()
		if err := s.checkQuit(); err != nil {
			return err
		}
		if confirmed {
			s.osd.Clear()
			return nil
		}
	}
}
