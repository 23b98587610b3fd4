package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// MetricMap is a set of named metrics of type T, created on first use
// Producers cache the returned pointer and update it with atomics;
// lookups and creation never block each other
type MetricMap[T any] struct {
	items sync.Map // string -> *T
	count atomic.Int32
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, creating it on first use
// Concurrent first calls for one key all receive the same pointer
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.items.Load(key); ok {
		return v.(*T)
	}
	v, loaded := m.items.LoadOrStore(key, new(T))
	if !loaded {
		m.count.Add(1)
	}
	return v.(*T)
}

// Keys returns the registered keys in sorted order
func (m *MetricMap[T]) Keys() []string {
	keys := make([]string, 0, m.Count())
	m.items.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	sort.Strings(keys)
	return keys
}

// Range calls fn for every metric in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	for _, k := range m.Keys() {
		if v, ok := m.items.Load(k); ok {
			fn(k, v.(*T))
		}
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	return int(m.count.Load())
}
