package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the engine
const (
	KeyTicks          = "engine.ticks"
	KeySessions       = "engine.sessions"
	KeyTasksRun       = "engine.tasks_run"
	KeyQueueEnqueued  = "queue.enqueued"
	KeyQueueDropped   = "queue.dropped"
	KeyQueueHighWater = "queue.high_water"
	KeyPaused         = "session.paused"
)

// Registry is the central metrics facade
// Producers cache pointers during init; hot paths write directly to atomics
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// Summary renders every metric as sorted key=value pairs for the log
func (r *Registry) Summary() string {
	var sb strings.Builder
	write := func(key string, value any) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%v", key, value)
	}
	r.Ints.Range(func(key string, ptr *atomic.Int64) { write(key, ptr.Load()) })
	r.Bools.Range(func(key string, ptr *atomic.Bool) { write(key, ptr.Load()) })
	return sb.String()
}

// StoreMax raises an int metric to v if v is larger
func StoreMax(m *atomic.Int64, v int64) {
	for {
		cur := m.Load()
		if v <= cur || m.CompareAndSwap(cur, v) {
			return
		}
	}
}
