package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tekkers/internal/config"
	"github.com/vovakirdan/tekkers/internal/core"
	"github.com/vovakirdan/tekkers/internal/sim"
)

// pulsePeriod is the blink period of the call-to-action lines, in seconds.
const pulsePeriod = 1.5

// DrawHUD writes the overlay text for the frame's phase. mode picks the
// control hint on the title screen.
func DrawHUD(s *core.Screen, frame sim.Frame, mode config.InputMode) {
	top := max(s.Height()/6, 1)
	pulse := core.ColorHUD
	if int(frame.Elapsed/(pulsePeriod/2))%2 == 1 {
		pulse = core.ColorGray
	}

	switch frame.Phase {
	case sim.PhaseNotStarted:
		s.DrawTextCentered(top, "TEKKERS", core.ColorHighlight)
		s.DrawTextCentered(top+1, "3D Cube Juggling", core.ColorHUD)
		s.DrawTextCentered(top+3, "Click to Start", pulse)
		s.DrawTextCentered(top+5, controlHint(mode), core.ColorGray)
		if frame.HighScore > 0 {
			s.DrawTextCentered(top+6, bestLine(frame.HighScore), core.ColorBrightYellow)
		}

	case sim.PhaseGameOver:
		s.DrawTextCentered(top, "GAME OVER", core.ColorAlert)
		s.DrawTextCentered(top+2, strconv.Itoa(frame.Score), core.ColorBrightWhite)
		s.DrawTextCentered(top+3, "bounces", core.ColorHUD)
		row := top + 4
		if frame.NewBest {
			s.DrawTextCentered(row, "NEW HIGH SCORE!", core.ColorSuccess)
			row++
		}
		s.DrawTextCentered(row, bestLine(frame.HighScore), core.ColorGray)
		s.DrawTextCentered(row+2, "Click to Retry", pulse)

	default:
		s.DrawTextCentered(1, strconv.Itoa(frame.Score), core.ColorBrightWhite)
		s.DrawTextCentered(2, bestLine(frame.HighScore), core.ColorGray)
	}
}

func bestLine(high int) string {
	return fmt.Sprintf("Best: %d", high)
}

func controlHint(mode config.InputMode) string {
	switch mode {
	case config.InputScroll:
		return "Move the mouse for X, scroll for depth"
	case config.InputTouch:
		return "Drag to move the paddle"
	default:
		return "Move the mouse to control the paddle (X and depth)"
	}
}
