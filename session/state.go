package session

import (
	"sync/atomic"

	"github.com/lixenwraith/firemen/constants"
	"github.com/lixenwraith/firemen/input"
)

// Cause records why the game-over flag was raised
type Cause uint8

const (
	CauseNone Cause = iota
	CauseLivesExhausted
	CauseTargetReached
	CauseExit
)

func (c Cause) String() string {
	switch c {
	case CauseLivesExhausted:
		return "lives exhausted"
	case CauseTargetReached:
		return "rescue target reached"
	case CauseExit:
		return "exit selected"
	default:
		return "none"
	}
}

// State is the single live session record
// Thread-Safety:
//   - mode, paused, rescued: atomics, read by the dispatcher on every tick
//   - everything else: owned by the task consumer, no locking
type State struct {
	mode    atomic.Uint32
	paused  atomic.Bool
	rescued atomic.Uint32

	Lives    int
	GameOver bool
	Cause    Cause

	// Entity pose indices
	DummyPos   int
	FiremenPos int

	// Keyed machines
	FiremenInput input.Debouncer
	ModeInput    input.Debouncer
}

// New creates a session in mode with full lives
func New(mode Mode) *State {
	s := &State{}
	s.Begin(mode)
	s.Renew()
	return s
}

// Begin re-arms the session after a menu selection
// Clears game-over and pause, resets the mode-input debouncer
func (s *State) Begin(mode Mode) {
	s.mode.Store(uint32(mode))
	s.paused.Store(false)
	s.GameOver = false
	s.Cause = CauseNone
	s.ModeInput.Reset()
}

// Renew restarts play in the current mode
// Lives, rescues, entity poses and the firemen debouncer reset; mode, pause
// and the mode-input debouncer carry over
func (s *State) Renew() {
	s.rescued.Store(0)
	s.Lives = constants.InitialLives
	s.DummyPos = 0
	s.FiremenPos = 0
	s.FiremenInput.Reset()
}

// Mode returns the current mode
func (s *State) Mode() Mode {
	return Mode(s.mode.Load())
}

// SetMode switches the current mode
func (s *State) SetMode(m Mode) {
	s.mode.Store(uint32(m))
}

// Paused reports the pause flag
func (s *State) Paused() bool {
	return s.paused.Load()
}

// TogglePause flips the pause flag and returns the new value
func (s *State) TogglePause() bool {
	for {
		old := s.paused.Load()
		if s.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Rescued returns the rescued count
func (s *State) Rescued() uint32 {
	return s.rescued.Load()
}

// Rescue increments the rescued count and returns the new value
func (s *State) Rescue() uint32 {
	return s.rescued.Add(1)
}

// LoseLife decrements lives and returns the remaining count
func (s *State) LoseLife() int {
	if s.Lives > 0 {
		s.Lives--
	}
	return s.Lives
}

// End raises the game-over flag; the first cause wins
func (s *State) End(cause Cause) {
	if !s.GameOver {
		s.GameOver = true
		s.Cause = cause
	}
}
