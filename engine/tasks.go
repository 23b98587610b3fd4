package engine

import (
	"log"

	"github.com/lixenwraith/firemen/audio"
	"github.com/lixenwraith/firemen/constants"
	"github.com/lixenwraith/firemen/input"
	"github.com/lixenwraith/firemen/session"
	"github.com/lixenwraith/firemen/sprite"
	"github.com/lixenwraith/firemen/task"
)

// execute runs one dequeued task to completion
func (g *Game) execute(t task.Task) {
	switch t.Kind {
	case task.KindModeInput:
		g.modeInput()
	case task.KindFiremenInput:
		g.firemenInput()
	case task.KindDummyMove:
		g.dummyMove()
	case task.KindDummyCrash:
		g.dummyCrash(t.Zone)
	case task.KindRescueIncrement:
		g.rescueIncrement()
	case task.KindSessionReset:
		g.newSession()
	default:
		log.Printf("engine: ignoring task %s", t.Kind)
		return
	}
	g.statTasksRun.Add(1)
}

// drain executes queued tasks until the queue is empty
func (g *Game) drain() {
	for {
		t, ok := g.queue.Dequeue()
		if !ok {
			return
		}
		g.execute(t)
	}
}

// dummyMove advances the dummy one pose along its fall
func (g *Game) dummyMove() {
	s := g.state
	g.renderer.ClearPose(sprite.EntityDummy, s.DummyPos)

	if s.DummyPos == sprite.Dummy.Last() {
		s.DummyPos = 0
		g.enqueue(task.RescueIncrement)
	} else {
		s.DummyPos++
		if zone, ok := sprite.CheckpointZone(s.DummyPos); ok {
			if zone != s.FiremenPos {
				g.enqueue(task.DummyCrash(sprite.CrashZone(s.DummyPos)))
			} else {
				g.play(audio.SoundBounce)
			}
		}
	}

	g.renderer.RenderPose(sprite.EntityDummy, s.DummyPos)
}

// dummyCrash costs a life and restarts the dummy from the top
func (g *Game) dummyCrash(zone uint8) {
	s := g.state
	remaining := s.LoseLife()

	g.renderer.ClearPose(sprite.EntityDummy, s.DummyPos)
	s.DummyPos = 0
	g.renderer.RenderPose(sprite.EntityCrash, int(zone))

	if remaining == 0 {
		s.End(session.CauseLivesExhausted)
	}

	g.renderer.RenderPose(sprite.EntityDummy, s.DummyPos)
	g.renderer.ClearPose(sprite.EntityLife, remaining)
	g.play(audio.SoundCrash)
}

// rescueIncrement counts a delivered dummy and checks the win target
func (g *Game) rescueIncrement() {
	s := g.state
	n := s.Rescue()
	g.renderer.DrawNumber(constants.RescuedX, constants.HUDY, int(n))
	g.play(audio.SoundRescue)

	if s.Mode().HasRescueTarget() && n >= constants.RescueTarget {
		s.End(session.CauseTargetReached)
	}
}

// firemenInput moves the firemen once per press/release cycle
func (g *Game) firemenInput() {
	s := g.state
	if !s.FiremenInput.Step(g.buttons.Pressed) {
		return
	}

	g.renderer.ClearPose(sprite.EntityFiremen, s.FiremenPos)
	switch g.buttons.Scan() {
	case input.DirRight:
		if s.FiremenPos < sprite.Firemen.Last() {
			s.FiremenPos++
		}
	case input.DirLeft:
		if s.FiremenPos > 0 {
			s.FiremenPos--
		}
	}
	g.renderer.RenderPose(sprite.EntityFiremen, s.FiremenPos)
}

// modeInput switches mode or toggles pause once per press/release cycle
func (g *Game) modeInput() {
	s := g.state
	if !s.ModeInput.Step(g.keypad.Pressed) {
		return
	}

	code := g.keypad.Scan()
	if mode, ok := session.ModeForKey(code); ok && mode != s.Mode() {
		log.Printf("engine: mode %s -> %s", s.Mode(), mode)
		s.SetMode(mode)
		g.enqueue(task.SessionReset)
		g.play(audio.SoundModeChange)
	}

	if code == input.KeyPause {
		paused := s.TogglePause()
		g.statPaused.Store(paused)
		g.drawModeLabel()
		g.play(audio.SoundPause)
	}
}

// drawModeLabel shows "Mode: N", or only "PAUSE " while paused
func (g *Game) drawModeLabel() {
	if g.state.Paused() {
		g.renderer.DrawText(constants.ModeLabelX, constants.HUDY, constants.PauseText)
		g.renderer.DrawText(constants.ModeValueX, constants.HUDY, constants.BlankDigit)
		return
	}
	g.renderer.DrawText(constants.ModeLabelX, constants.HUDY, constants.ModeLabelText)
	g.renderer.DrawNumber(constants.ModeValueX, constants.HUDY, int(g.state.Mode()))
}
