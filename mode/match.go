package mode

import (
	"log"

	"github.com/lixenwraith/head-soccer/core"
	"github.com/lixenwraith/head-soccer/engine"
	"github.com/lixenwraith/head-soccer/parameter"
	"github.com/lixenwraith/head-soccer/render"
)

// Match runs the fixed-rate frame loop until the match timer expires
func (s *Session) Match() error {
	timer := engine.NewMatchTimer(s.clock.NowMs(), s.cfg.Match.Seconds)
	s.keys.Reset()

	for {
		now := s.clock.NowMs()

		s.poll()
		if err := s.checkQuit(); err != nil {
			return err
		}

		held := s.keys.State(now).Merge(s.decoder.State())
		if _, scored := s.game.Step(now, held.Controls()); scored {
			s.clock.SleepMs(parameter.GoalBannerMs)
			s.osd.ClearRow(render.BannerRow)
		}

		s.syncSprites()
		s.drawScoreboard(timer, now)
		s.renderer.Draw()

		if timer.Expired(now) {
			p1, p2 := s.game.State.Score()
			if winner, ok := s.game.State.Leader(); ok {
				log.Printf("match: full time, %s wins (%d-%d)", winner, p1, p2)
			} else {
				log.Printf("match: full time, draw (%d-%d)", p1, p2)
			}
			log.Printf("match: stats %s", s.game.Stats().Summary())
			return nil
		}
		s.clock.SleepMs(parameter.FrameMs)
	}
}

// onGoal shows the banner over the updated score before the fanfare blocks
func (s *Session) onGoal(scorer core.PlayerID, st *engine.GameState) {
	s.syncSprites()
	p1, p2 := st.Score()
	s.osd.Scoreboard(p1, p2, "")
	s.osd.PrintCentered(render.BannerRow, render.GoalBanner, render.TextStyle(render.RgbBanner))
	s.renderer.Draw()
}

// drawScoreboard redraws the top rows; the rest of the overlay is left alone
func (s *Session) drawScoreboard(timer engine.MatchTimer, now int64) {
	s.osd.ClearRow(render.LabelRow)
	s.osd.ClearRow(render.ValueRow)
	p1, p2 := s.game.State.Score()
	s.osd.Scoreboard(p1, p2, timer.Clock(now))
	s.osd.Instructions()
}
