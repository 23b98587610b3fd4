package input

import "testing"

// TestDebounceHoldActsOnce: a key held across many steps yields a single action
func TestDebounceHoldActsOnce(t *testing.T) {
	var d Debouncer
	held := true
	acts := 0
	for i := 0; i < 100; i++ {
		if d.Step(func() bool { return held }) {
			acts++
		}
	}
	if acts != 1 {
		t.Fatalf("held key acted %d times, want 1", acts)
	}
	if d.State() != StateAwaitRelease {
		t.Errorf("State = %v, want AwaitRelease", d.State())
	}
}

func TestDebounceFullCycle(t *testing.T) {
	var d Debouncer
	steps := []struct {
		held      bool
		wantAct   bool
		wantState DebounceState
	}{
		{false, false, StateAwaitPress},
		{true, false, StateHandlePress},
		{true, true, StateAwaitRelease},
		{true, false, StateAwaitRelease},
		{false, false, StateAwaitPress},
		{true, false, StateHandlePress},
		{false, true, StateAwaitRelease}, // acts even if released before the action step
		{false, false, StateAwaitPress},
	}
	for i, s := range steps {
		act := d.Step(func() bool { return s.held })
		if act != s.wantAct {
			t.Errorf("step %d: act = %v, want %v", i, act, s.wantAct)
		}
		if d.State() != s.wantState {
			t.Errorf("step %d: state = %v, want %v", i, d.State(), s.wantState)
		}
	}
}

func TestDebounceHandlePressDoesNotSample(t *testing.T) {
	var d Debouncer
	d.Step(func() bool { return true })

	sampled := false
	if !d.Step(func() bool { sampled = true; return false }) {
		t.Fatal("HandlePress step should act")
	}
	if sampled {
		t.Error("HandlePress step sampled the input")
	}
}

func TestDebounceReset(t *testing.T) {
	var d Debouncer
	d.Step(func() bool { return true })
	d.Step(func() bool { return true })
	d.Reset()
	if d.State() != StateAwaitPress {
		t.Errorf("State after Reset = %v, want AwaitPress", d.State())
	}
}

func TestDebounceStateString(t *testing.T) {
	tests := []struct {
		s    DebounceState
		want string
	}{
		{StateAwaitPress, "AwaitPress"},
		{StateHandlePress, "HandlePress"},
		{StateAwaitRelease, "AwaitRelease"},
		{DebounceState(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
