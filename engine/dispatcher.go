package engine

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/firemen/constants"
	"github.com/lixenwraith/firemen/session"
	"github.com/lixenwraith/firemen/status"
	"github.com/lixenwraith/firemen/task"
)

// TickView is the slice of session state the dispatcher may read
// Every method must be a single atomic load
type TickView interface {
	Paused() bool
	Mode() session.Mode
	Rescued() uint32
}

// TaskSink accepts tasks from the tick context
type TaskSink interface {
	Enqueue(task.Task) error
	Len() int
}

// Dispatcher derives the input and dummy rates from the base tick
// Tick runs on the ticker goroutine; Reset only while the ticker is stopped
type Dispatcher struct {
	sink TaskSink
	view TickView

	fast int // Base ticks until the next input enqueue
	slow int // Base ticks until the next dummy move, before difficulty offset

	dropLogged bool

	statTicks     *atomic.Int64
	statEnqueued  *atomic.Int64
	statDropped   *atomic.Int64
	statHighWater *atomic.Int64
}

// NewDispatcher creates a dispatcher with both dividers at full period
func NewDispatcher(sink TaskSink, view TickView, reg *status.Registry) *Dispatcher {
	d := &Dispatcher{
		sink:          sink,
		view:          view,
		statTicks:     reg.Ints.Get(status.KeyTicks),
		statEnqueued:  reg.Ints.Get(status.KeyQueueEnqueued),
		statDropped:   reg.Ints.Get(status.KeyQueueDropped),
		statHighWater: reg.Ints.Get(status.KeyQueueHighWater),
	}
	d.Reset()
	return d
}

// Reset restarts both dividers and re-arms the overflow log
func (d *Dispatcher) Reset() {
	d.fast = constants.FastDividerPeriod
	d.slow = constants.SlowDividerPeriod
	d.dropLogged = false
}

// Tick handles one base tick
// Order per tick: mode input, then firemen input, then dummy move
func (d *Dispatcher) Tick() {
	d.statTicks.Add(1)

	// Single read; the rest of the tick uses this value
	paused := d.view.Paused()

	d.fast--
	if d.fast <= 0 {
		d.fast = constants.FastDividerPeriod
		d.enqueue(task.ModeInput)
		if !paused {
			d.enqueue(task.FiremenInput)
		}
	}

	// Slow divider is frozen while paused
	if paused {
		return
	}

	d.slow--
	if d.slow <= d.threshold() {
		d.slow = constants.SlowDividerPeriod
		d.enqueue(task.DummyMove)
	}
}

// threshold is the countdown value at which the slow divider fires
// Scaling modes fire DifficultyStep ticks earlier per rescue
func (d *Dispatcher) threshold() int {
	if !d.view.Mode().ScalesDifficulty() {
		return 0
	}
	return constants.DifficultyStep * int(d.view.Rescued())
}

func (d *Dispatcher) enqueue(t task.Task) {
	if err := d.sink.Enqueue(t); err != nil {
		dropped := d.statDropped.Add(1)
		if !d.dropLogged {
			d.dropLogged = true
			log.Printf("dispatcher: %v, dropped %s (%d dropped so far)", err, t.Kind, dropped)
		}
		return
	}
	d.statEnqueued.Add(1)
	status.StoreMax(d.statHighWater, int64(d.sink.Len()))
}
