package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/firemen/audio"
	"github.com/lixenwraith/firemen/constants"
	"github.com/lixenwraith/firemen/input"
	"github.com/lixenwraith/firemen/render"
	"github.com/lixenwraith/firemen/session"
	"github.com/lixenwraith/firemen/status"
	"github.com/lixenwraith/firemen/task"
)

// AudioPlayer plays sound cues; implementations must not block
type AudioPlayer interface {
	Play(audio.SoundType) bool
}

// Config wires a Game to its collaborators
// Zero values select the defaults from constants
type Config struct {
	Renderer render.Renderer
	Buttons  input.Directional
	Keypad   input.Keypad
	Audio    AudioPlayer // nil plays nothing
	Status   *status.Registry

	TickRate  int           // Base ticks per second
	QueueSize int           // Task ring slots
	MenuPoll  time.Duration // Menu keypad retry interval
}

// Game owns the session, the task queue and the tick source
// Tasks run on the goroutine calling Run; only the dispatcher runs elsewhere
type Game struct {
	renderer render.Renderer
	buttons  input.Directional
	keypad   input.Keypad
	audio    AudioPlayer

	queue      *task.Queue
	state      *session.State
	dispatcher *Dispatcher
	ticker     *Ticker
	menuPoll   time.Duration

	statSessions *atomic.Int64
	statTasksRun *atomic.Int64
	statPaused   *atomic.Bool
}

// NewGame creates a game waiting at the menu; call Run to play
func NewGame(cfg Config) *Game {
	reg := cfg.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	rate := cfg.TickRate
	if rate <= 0 {
		rate = constants.TicksPerSecond
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = constants.TaskQueueSize
	}
	poll := cfg.MenuPoll
	if poll <= 0 {
		poll = constants.MenuPollInterval
	}

	g := &Game{
		renderer:     cfg.Renderer,
		buttons:      cfg.Buttons,
		keypad:       cfg.Keypad,
		audio:        cfg.Audio,
		queue:        task.NewQueue(size),
		state:        session.New(session.ModeClassic),
		menuPoll:     poll,
		statSessions: reg.Ints.Get(status.KeySessions),
		statTasksRun: reg.Ints.Get(status.KeyTasksRun),
		statPaused:   reg.Bools.Get(status.KeyPaused),
	}
	g.dispatcher = NewDispatcher(g.queue, g.state, reg)
	g.ticker = NewTicker(rate, g.dispatcher.Tick)
	return g
}

// State returns the live session record
func (g *Game) State() *session.State {
	return g.state
}

// Queue returns the task queue
func (g *Game) Queue() *task.Queue {
	return g.queue
}

// enqueue schedules a follow-up task from the consumer side
func (g *Game) enqueue(t task.Task) {
	if err := g.queue.Enqueue(t); err != nil {
		log.Printf("engine: %v, dropped %s", err, t.Kind)
	}
}

func (g *Game) play(st audio.SoundType) {
	if g.audio != nil {
		g.audio.Play(st)
	}
}
