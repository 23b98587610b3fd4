package task

// Kind identifies a deferred work item
type Kind uint8

const (
	// KindNone is the zero value returned by Dequeue on an empty queue
	KindNone Kind = iota

	// KindModeInput steps the mode/pause debounce machine
	// Producer: Dispatcher fast divider, every expiry (paused or not)
	KindModeInput

	// KindFiremenInput steps the firemen debounce machine
	// Producer: Dispatcher fast divider, only while not paused
	KindFiremenInput

	// KindDummyMove advances the falling dummy one pose
	// Producer: Dispatcher slow divider, only while not paused
	KindDummyMove

	// KindDummyCrash costs one life | Payload: Zone
	// Producer: DummyMove on a missed checkpoint
	KindDummyCrash

	// KindRescueIncrement bumps the rescued count
	// Producer: DummyMove on the last pose
	KindRescueIncrement

	// KindSessionReset redraws and reinitializes the session for the current mode
	// Producer: ModeInput on a mode change
	KindSessionReset

	kindCount
)

var kindNames = [kindCount]string{
	KindNone:            "None",
	KindModeInput:       "ModeInput",
	KindFiremenInput:    "FiremenInput",
	KindDummyMove:       "DummyMove",
	KindDummyCrash:      "DummyCrash",
	KindRescueIncrement: "RescueIncrement",
	KindSessionReset:    "SessionReset",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// Task is a tagged work item; Zone is meaningful only for KindDummyCrash
type Task struct {
	Kind Kind
	Zone uint8 // Screen third of the crash: 0, 1 or 2
}

// Convenience constructors for the payload-free kinds
var (
	ModeInput       = Task{Kind: KindModeInput}
	FiremenInput    = Task{Kind: KindFiremenInput}
	DummyMove       = Task{Kind: KindDummyMove}
	RescueIncrement = Task{Kind: KindRescueIncrement}
	SessionReset    = Task{Kind: KindSessionReset}
)

// DummyCrash builds a crash task for the given screen third
func DummyCrash(zone uint8) Task {
	return Task{Kind: KindDummyCrash, Zone: zone}
}
