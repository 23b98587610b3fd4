package constants

import "time"

// Tick & Loop Timing
const (
	// TicksPerSecond is the base tick rate of the periodic dispatcher (board timer0 rate)
	TicksPerSecond = 100

	// FastDividerPeriod is the base tick count between input task enqueues
	FastDividerPeriod = 5

	// SlowDividerPeriod is the nominal base tick count between dummy motion enqueues
	SlowDividerPeriod = 50

	// DifficultyStep is the number of base ticks the slow divider fires early per rescue
	DifficultyStep = 2

	// MenuPollInterval is the retry interval of the blocking menu keypad read
	MenuPollInterval = 20 * time.Millisecond

	// DefaultFirstHoldWindow is how long the first event of a key press keeps it held
	// Longer than the usual terminal autorepeat delay of 500ms
	DefaultFirstHoldWindow = 600 * time.Millisecond

	// DefaultRepeatHoldWindow is how long each autorepeat event keeps the key held
	DefaultRepeatHoldWindow = 200 * time.Millisecond
)

// Task Queue Limits
const (
	// TaskQueueSize is the slot count of the task ring buffer
	// One slot stays empty, so at most TaskQueueSize-1 tasks are pending
	TaskQueueSize = 512
)
