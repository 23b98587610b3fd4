package engine

import (
	"context"
	"fmt"
	"log"

	"github.com/lixenwraith/firemen/constants"
	"github.com/lixenwraith/firemen/input"
	"github.com/lixenwraith/firemen/session"
	"github.com/lixenwraith/firemen/sprite"
)

var menuModes = []session.Mode{session.ModeClassic, session.ModeAdvanced, session.ModeInfinity}

// drawMenu paints the title and mode list
func (g *Game) drawMenu() {
	g.renderer.DrawText(constants.TitleX, constants.TitleY, constants.TitleText)
	y := constants.MenuFirstY
	for _, m := range menuModes {
		g.renderer.DrawText(constants.MenuX, y, fmt.Sprintf("Mode %d: %s ", m, m))
		y += constants.MenuStep
	}
	g.renderer.DrawText(constants.MenuX, y, constants.ExitText)
}

// initializeSession shows the menu and blocks for a keypad selection
// After a game, a key still held from the last session must come up first
// A key that names no mode is the exit selection and raises game over with CauseExit
// Only a cancelled ctx returns an error
func (g *Game) initializeSession(ctx context.Context, afterGame bool) error {
	g.renderer.ClearScreen()
	g.drawMenu()
	g.renderer.Show()

	if afterGame {
		if err := input.WaitRelease(ctx, g.keypad, g.menuPoll); err != nil {
			return fmt.Errorf("menu: %w", err)
		}
	}
	code, err := input.WaitKey(ctx, g.keypad, g.menuPoll)
	if err != nil {
		return fmt.Errorf("menu: %w", err)
	}

	mode, ok := session.ModeForKey(code)
	if !ok {
		g.state.Begin(session.ModeClassic)
		g.state.End(session.CauseExit)
	} else {
		g.state.Begin(mode)
	}
	g.statPaused.Store(false)

	g.renderer.ClearScreen()
	return nil
}

// newSession redraws the playfield and restarts play in the current mode
// Runs between sessions and as the SessionReset task after a mode switch
func (g *Game) newSession() {
	g.renderer.ClearScreen()
	g.renderer.DrawBackground()
	for i := 0; i < sprite.Life.Count(); i++ {
		g.renderer.RenderPose(sprite.EntityLife, i)
	}

	g.state.Renew()

	g.renderer.RenderPose(sprite.EntityDummy, g.state.DummyPos)
	g.renderer.DrawNumber(constants.RescuedX, constants.HUDY, int(g.state.Rescued()))
	g.renderer.RenderPose(sprite.EntityFiremen, g.state.FiremenPos)
	g.drawModeLabel()

	g.queue.Reset()
	g.statSessions.Add(1)
	log.Printf("engine: new %s session", g.state.Mode())
}

// showGameOver draws the terminal message after the exit selection
func (g *Game) showGameOver() {
	g.renderer.DrawText(constants.GameOverX, constants.GameOverY, constants.GameOverText)
	g.renderer.Show()
}
