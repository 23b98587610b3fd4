package task

import (
	"errors"
	"sync"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(8)

	in := []Task{ModeInput, FiremenInput, DummyMove, DummyCrash(2), RescueIncrement, SessionReset}
	for _, tk := range in {
		if err := q.Enqueue(tk); err != nil {
			t.Fatalf("Enqueue(%v) = %v", tk.Kind, err)
		}
	}

	for i, want := range in {
		got, ok := q.Dequeue()
		if !ok {
			t.Fatalf("Dequeue #%d reported empty", i)
		}
		if got != want {
			t.Errorf("Dequeue #%d = %+v, want %+v", i, got, want)
		}
	}

	if !q.IsEmpty() {
		t.Error("Queue should be empty after draining")
	}
	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue on empty queue should report false")
	}
}

// TestQueueInterleavedWraparound checks order and count across many head/tail wraps
func TestQueueInterleavedWraparound(t *testing.T) {
	q := NewQueue(5)

	var next, expect uint8
	enq, deq := 0, 0
	for round := 0; round < 50; round++ {
		// Push up to 3, pop 2: the count oscillates but never exceeds capacity-1
		for i := 0; i < 3 && !q.IsFull(); i++ {
			if err := q.Enqueue(DummyCrash(next)); err != nil {
				t.Fatalf("round %d: unexpected %v", round, err)
			}
			next++
			enq++
		}
		for i := 0; i < 2; i++ {
			got, ok := q.Dequeue()
			if !ok {
				break
			}
			if got.Zone != expect {
				t.Fatalf("round %d: got zone %d, want %d", round, got.Zone, expect)
			}
			expect++
			deq++
		}
		if q.Len() != enq-deq {
			t.Fatalf("round %d: Len = %d, want %d", round, q.Len(), enq-deq)
		}
	}
}

func TestQueueOverflowDropsNewest(t *testing.T) {
	q := NewQueue(4)

	for i := uint8(0); i < 3; i++ {
		if err := q.Enqueue(DummyCrash(i)); err != nil {
			t.Fatalf("Enqueue %d: %v", i, err)
		}
	}
	if !q.IsFull() {
		t.Fatal("Queue with capacity-1 tasks should be full")
	}
	if q.Cap() != 3 {
		t.Errorf("Cap = %d, want 3", q.Cap())
	}

	err := q.Enqueue(DummyCrash(9))
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("Enqueue on full queue = %v, want ErrQueueFull", err)
	}
	if q.Dropped() != 1 {
		t.Errorf("Dropped = %d, want 1", q.Dropped())
	}
	if q.Len() != 3 {
		t.Errorf("Len = %d after rejected enqueue, want 3", q.Len())
	}

	for i := uint8(0); i < 3; i++ {
		got, _ := q.Dequeue()
		if got.Zone != i {
			t.Errorf("Dequeue #%d zone = %d, want %d", i, got.Zone, i)
		}
	}
}

func TestQueueReset(t *testing.T) {
	q := NewQueue(4)
	_ = q.Enqueue(DummyMove)
	_ = q.Enqueue(DummyMove)
	_ = q.Enqueue(DummyMove)
	_ = q.Enqueue(DummyMove) // dropped

	q.Reset()

	if !q.IsEmpty() || q.Len() != 0 {
		t.Errorf("Reset left %d tasks", q.Len())
	}
	if q.Dropped() != 0 {
		t.Errorf("Reset left drop count %d", q.Dropped())
	}
	if err := q.Enqueue(FiremenInput); err != nil {
		t.Fatalf("Enqueue after Reset: %v", err)
	}
	got, ok := q.Dequeue()
	if !ok || got != FiremenInput {
		t.Errorf("Dequeue after Reset = %+v, %v", got, ok)
	}
}

func TestQueueReadySignal(t *testing.T) {
	q := NewQueue(4)

	select {
	case <-q.Ready():
		t.Fatal("Ready signalled before any enqueue")
	default:
	}

	_ = q.Enqueue(ModeInput)
	_ = q.Enqueue(ModeInput)

	select {
	case <-q.Ready():
	default:
		t.Fatal("Ready not signalled after enqueue")
	}

	// Coalesced: one pending wakeup only
	select {
	case <-q.Ready():
		t.Fatal("Ready should hold a single wakeup")
	default:
	}
}

// TestQueueConcurrentProducerConsumer runs one producer and one consumer concurrently
// Every accepted task must be consumed exactly once, in order
func TestQueueConcurrentProducerConsumer(t *testing.T) {
	const total = 20000
	q := NewQueue(64)

	var wg sync.WaitGroup
	accepted := make([]uint8, 0, total)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; i++ {
			zone := uint8(i % 251)
			if err := q.Enqueue(DummyCrash(zone)); err == nil {
				accepted = append(accepted, zone)
			}
		}
	}()

	consumed := make([]uint8, 0, total)
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

loop:
	for {
		if tk, ok := q.Dequeue(); ok {
			consumed = append(consumed, tk.Zone)
			continue
		}
		select {
		case <-done:
			// Producer finished; a final empty check ends the drain
			if q.IsEmpty() {
				break loop
			}
		default:
		}
	}

	if len(consumed) != len(accepted) {
		t.Fatalf("consumed %d tasks, accepted %d", len(consumed), len(accepted))
	}
	for i := range accepted {
		if consumed[i] != accepted[i] {
			t.Fatalf("order mismatch at %d: got %d, want %d", i, consumed[i], accepted[i])
		}
	}
	if uint64(len(accepted))+q.Dropped() != total {
		t.Errorf("accepted %d + dropped %d != %d", len(accepted), q.Dropped(), total)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindModeInput, "ModeInput"},
		{KindDummyCrash, "DummyCrash"},
		{KindSessionReset, "SessionReset"},
		{Kind(200), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}
