package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/firemen/audio"
	"github.com/lixenwraith/firemen/input"
	"github.com/lixenwraith/firemen/session"
	"github.com/lixenwraith/firemen/sprite"
	"github.com/lixenwraith/firemen/status"
	"github.com/lixenwraith/firemen/task"
)

type point struct{ x, y int }

// fakeRenderer records retained display state like the terminal renderer
// Only touched from the goroutine running tasks
type fakeRenderer struct {
	visible    map[sprite.Entity]map[int]bool
	rendered   map[sprite.Entity]map[int]int // RenderPose call counts, never cleared
	texts      map[point]string
	numbers    map[point]int
	background bool
	clears     int
	shows      int
}

func newFakeRenderer() *fakeRenderer {
	r := &fakeRenderer{rendered: make(map[sprite.Entity]map[int]int)}
	r.ClearScreen()
	r.clears = 0
	return r
}

func (r *fakeRenderer) RenderPose(e sprite.Entity, pose int) {
	if r.visible[e] == nil {
		r.visible[e] = make(map[int]bool)
	}
	if r.rendered[e] == nil {
		r.rendered[e] = make(map[int]int)
	}
	r.visible[e][pose] = true
	r.rendered[e][pose]++
}

func (r *fakeRenderer) ClearPose(e sprite.Entity, pose int) {
	delete(r.visible[e], pose)
}

// DrawText and DrawNumber replace whatever was anchored at the same point
func (r *fakeRenderer) DrawText(x, y int, s string) {
	delete(r.numbers, point{x, y})
	r.texts[point{x, y}] = s
}

func (r *fakeRenderer) DrawNumber(x, y int, n int) {
	delete(r.texts, point{x, y})
	r.numbers[point{x, y}] = n
}

func (r *fakeRenderer) ClearScreen() {
	r.visible = make(map[sprite.Entity]map[int]bool)
	r.texts = make(map[point]string)
	r.numbers = make(map[point]int)
	r.background = false
	r.clears++
}

func (r *fakeRenderer) DrawBackground() { r.background = true }

func (r *fakeRenderer) Show() { r.shows++ }

func (r *fakeRenderer) isVisible(e sprite.Entity, pose int) bool {
	return r.visible[e][pose]
}

// fakeButtons is a scripted pushbutton pair
type fakeButtons struct {
	held bool
	dir  input.Direction
}

func (b *fakeButtons) Pressed() bool { return b.held }

func (b *fakeButtons) Scan() input.Direction {
	if !b.held {
		return input.DirNone
	}
	return b.dir
}

// fakeKeypad is a scripted keypad
// A key pressed with a poll budget releases itself after that many Pressed calls;
// queued presses land on Scan once the keypad is up
type fakeKeypad struct {
	held      bool
	code      input.KeyCode
	holdPolls int
	next      []input.KeyCode
	polls     int
}

func (k *fakeKeypad) Pressed() bool {
	k.polls++
	if k.held && k.holdPolls > 0 {
		k.holdPolls--
		if k.holdPolls == 0 {
			k.held = false
		}
		return true
	}
	return k.held
}

func (k *fakeKeypad) Scan() input.KeyCode {
	if !k.held && len(k.next) > 0 {
		k.press(k.next[0])
		k.next = k.next[1:]
	}
	if !k.held {
		return input.KeyFailure
	}
	return k.code
}

func (k *fakeKeypad) press(code input.KeyCode) {
	k.held = true
	k.code = code
	k.holdPolls = 0
}

// pressFor holds code for the given number of Pressed polls
func (k *fakeKeypad) pressFor(code input.KeyCode, polls int) {
	k.press(code)
	k.holdPolls = polls
}

// queue schedules presses that arrive after the current key is released
func (k *fakeKeypad) queue(codes ...input.KeyCode) {
	k.next = append(k.next, codes...)
}

func (k *fakeKeypad) release() { k.held = false }

// fakeAudio records played cues
type fakeAudio struct {
	played []audio.SoundType
}

func (a *fakeAudio) Play(st audio.SoundType) bool {
	a.played = append(a.played, st)
	return true
}

func (a *fakeAudio) count(st audio.SoundType) int {
	n := 0
	for _, p := range a.played {
		if p == st {
			n++
		}
	}
	return n
}

type testGame struct {
	*Game
	r   *fakeRenderer
	b   *fakeButtons
	k   *fakeKeypad
	a   *fakeAudio
	reg *status.Registry
}

// newTestGame builds a game in Classic mode with a 1 Hz ticker that tests never wait on
func newTestGame(t *testing.T) *testGame {
	t.Helper()
	tg := &testGame{
		r:   newFakeRenderer(),
		b:   &fakeButtons{},
		k:   &fakeKeypad{},
		a:   &fakeAudio{},
		reg: status.NewRegistry(),
	}
	tg.Game = NewGame(Config{
		Renderer: tg.r,
		Buttons:  tg.b,
		Keypad:   tg.k,
		Audio:    tg.a,
		Status:   tg.reg,
		TickRate: 1,
		MenuPoll: time.Millisecond,
	})
	t.Cleanup(tg.ticker.Stop)
	return tg
}

// queued drains the queue without executing and returns the task kinds
func queued(q *task.Queue) []task.Task {
	var out []task.Task
	for {
		t, ok := q.Dequeue()
		if !ok {
			return out
		}
		out = append(out, t)
	}
}

// startSession puts the game directly into a fresh session in mode
func (tg *testGame) startSession(mode session.Mode) {
	tg.state.Begin(mode)
	tg.newSession()
}
