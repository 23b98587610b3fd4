package input

// DebounceState is the 3-value press/release tracker of a keyed machine
type DebounceState uint8

const (
	StateAwaitPress   DebounceState = iota // Idle, waiting for a key to go down
	StateHandlePress                       // Edge seen, act exactly once on next step
	StateAwaitRelease                      // Acted, waiting for the key to come up
)

func (s DebounceState) String() string {
	switch s {
	case StateAwaitPress:
		return "AwaitPress"
	case StateHandlePress:
		return "HandlePress"
	case StateAwaitRelease:
		return "AwaitRelease"
	default:
		return "Unknown"
	}
}

// Debouncer turns a level-held input into one logical action per press/release cycle
// Not safe for concurrent use; owned by the task consumer
type Debouncer struct {
	state DebounceState
}

// State returns the current debounce state
func (d *Debouncer) State() DebounceState {
	return d.state
}

// Reset returns the machine to StateAwaitPress
func (d *Debouncer) Reset() {
	d.state = StateAwaitPress
}

// Step advances the machine once; held is only sampled in the waiting states
// Returns true exactly on the step the caller must act on the press
func (d *Debouncer) Step(held func() bool) bool {
	switch d.state {
	case StateAwaitPress:
		if held() {
			d.state = StateHandlePress
		}
	case StateHandlePress:
		d.state = StateAwaitRelease
		return true
	case StateAwaitRelease:
		if !held() {
			d.state = StateAwaitPress
		}
	default:
		d.state = StateAwaitPress
	}
	return false
}
