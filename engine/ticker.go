package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/firemen/core"
)

// Ticker calls tick at a fixed rate on its own goroutine
// Stop blocks until the goroutine has exited, so no tick runs after it returns
type Ticker struct {
	interval time.Duration
	tick     func()

	mu       sync.Mutex
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewTicker creates a stopped ticker; rateHz below 1 is treated as 1
func NewTicker(rateHz int, tick func()) *Ticker {
	return &Ticker{
		interval: time.Second / time.Duration(max(rateHz, 1)),
		tick:     tick,
	}
}

// Interval returns the tick period
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Running reports whether the tick goroutine is active
func (t *Ticker) Running() bool {
	return t.running.Load()
}

// Start launches the tick goroutine; no-op if already running
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running.CompareAndSwap(false, true) {
		return
	}
	stop := make(chan struct{})
	t.stopChan = stop
	t.wg.Add(1)
	core.Go(func() { t.loop(stop) })
}

// Stop halts the tick goroutine; no-op if not running
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running.CompareAndSwap(true, false) {
		return
	}
	close(t.stopChan)
	t.wg.Wait()
}

func (t *Ticker) loop(stop <-chan struct{}) {
	defer t.wg.Done()

	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tk.C:
			// Prefer stop when both are ready
			select {
			case <-stop:
				return
			default:
			}
			t.tick()
		}
	}
}
