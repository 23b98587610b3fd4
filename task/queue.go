package task

import (
	"errors"
	"sync"
)

// ErrQueueFull is reported when an enqueue is rejected
var ErrQueueFull = errors.New("task queue full")

// Queue is a bounded FIFO ring buffer of tasks with an explicit count
// Thread-Safety:
//   - Enqueue: producer context (dispatcher tick goroutine)
//   - Dequeue: single consumer (main loop)
//   - Every read-modify-write of head, tail and size happens under mu
//
// Overflow: newest task is dropped; queued tasks keep their order
type Queue struct {
	mu      sync.Mutex
	buf     []Task
	head    int
	tail    int
	size    int
	dropped uint64

	// ready carries at most one pending wakeup for the consumer
	ready chan struct{}
}

// NewQueue creates a queue with the given slot count
// One slot stays empty, so capacity-1 tasks can be pending
func NewQueue(capacity int) *Queue {
	if capacity < 2 {
		capacity = 2
	}
	return &Queue{
		buf:   make([]Task, capacity),
		ready: make(chan struct{}, 1),
	}
}

// Enqueue appends t at the tail
// Returns ErrQueueFull if no slot is free; t is dropped and counted
func (q *Queue) Enqueue(t Task) error {
	q.mu.Lock()
	if q.size == len(q.buf)-1 {
		q.dropped++
		q.mu.Unlock()
		return ErrQueueFull
	}
	q.buf[q.tail] = t
	q.tail++
	if q.tail == len(q.buf) {
		q.tail = 0
	}
	q.size++
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
	return nil
}

// Dequeue removes the task at the head
// Returns false on an empty queue; callers drain with IsEmpty or the ok result
func (q *Queue) Dequeue() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.size == 0 {
		return Task{}, false
	}
	t := q.buf[q.head]
	q.buf[q.head] = Task{}
	q.head++
	if q.head == len(q.buf) {
		q.head = 0
	}
	q.size--
	return t, true
}

// IsEmpty reports whether no task is pending
func (q *Queue) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size == 0
}

// IsFull reports whether the next Enqueue would be dropped
func (q *Queue) IsFull() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size == len(q.buf)-1
}

// Len returns the pending task count
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Cap returns the maximum pending task count
func (q *Queue) Cap() int {
	return len(q.buf) - 1
}

// Dropped returns the number of tasks rejected since the last Reset
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// Reset discards every pending task and clears the drop counter
// Tasks enqueued concurrently land either before (discarded) or after (kept) the reset
func (q *Queue) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()

	clear(q.buf)
	q.head = 0
	q.tail = 0
	q.size = 0
	q.dropped = 0
}

// Ready returns a channel signalled after an Enqueue
// A receive only means "maybe non-empty"; drain until Dequeue reports false
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}
