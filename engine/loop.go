package engine

import (
	"context"
	"log"

	"github.com/lixenwraith/firemen/audio"
	"github.com/lixenwraith/firemen/session"
)

// Run plays sessions until the exit selection or ctx is done
// Returns nil after the exit selection, ctx.Err() (wrapped) on cancellation
func (g *Game) Run(ctx context.Context) error {
	if err := g.initializeSession(ctx, false); err != nil {
		return err
	}
	g.newSession()
	if g.state.Cause == session.CauseExit {
		g.showGameOver()
		return nil
	}

	g.ticker.Start()
	defer g.ticker.Stop()

	for {
		exit, err := g.pass(ctx)
		if err != nil {
			return err
		}
		if exit {
			g.showGameOver()
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.queue.Ready():
		}
	}
}

// pass drains the queue, flushes the display and handles game over
// exit is true once the player chose to leave at the menu
func (g *Game) pass(ctx context.Context) (exit bool, err error) {
	g.drain()
	g.renderer.Show()

	if !g.state.GameOver {
		return false, nil
	}
	return g.restart(ctx)
}

// restart ends the current session and runs the menu for the next one
// The ticker is stopped throughout, so the dispatcher reset cannot race a tick
func (g *Game) restart(ctx context.Context) (exit bool, err error) {
	g.ticker.Stop()

	cause := g.state.Cause
	if cause == session.CauseTargetReached {
		g.play(audio.SoundWin)
	} else {
		g.play(audio.SoundGameOver)
	}
	log.Printf("engine: game over in %s mode: %s, rescued %d", g.state.Mode(), cause, g.state.Rescued())

	g.renderer.ClearScreen()
	if err := g.initializeSession(ctx, true); err != nil {
		return false, err
	}
	g.newSession()
	if g.state.Cause == session.CauseExit {
		return true, nil
	}

	g.dispatcher.Reset()
	g.ticker.Start()
	return false, nil
}
