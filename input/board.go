package input

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/firemen/constants"
	"github.com/lixenwraith/firemen/core"
)

// HoldWindows sets how long a key event keeps its key held
// First must outlast the terminal autorepeat delay (typically 500ms), Repeat
// the autorepeat interval, so one continuous hold never reads as two presses
type HoldWindows struct {
	First  time.Duration
	Repeat time.Duration
}

// DefaultHoldWindows returns the windows for common terminal autorepeat settings
func DefaultHoldWindows() HoldWindows {
	return HoldWindows{
		First:  constants.DefaultFirstHoldWindow,
		Repeat: constants.DefaultRepeatHoldWindow,
	}
}

// keyHold tracks the last event of one key group
type keyHold struct {
	seen      time.Time
	repeating bool
}

// Board emulates the pushbuttons and keypad from terminal key events
// Terminals report presses (and autorepeats) but never releases, so a key
// counts as held until its window passes without a fresh event for its group
//
// Thread-Safety: HandleKey runs on the event poller, scans on the task consumer
type Board struct {
	mu       sync.Mutex
	keyTable *KeyTable
	clock    core.TimeProvider
	windows  HoldWindows

	button     keyHold
	buttonDir  Direction
	keypad     keyHold
	keypadCode KeyCode
}

// NewBoard creates a board with the default key table
// A Repeat window that is zero or longer than First becomes First
func NewBoard(clock core.TimeProvider, windows HoldWindows) *Board {
	if windows.Repeat <= 0 || windows.Repeat > windows.First {
		windows.Repeat = windows.First
	}
	return &Board{
		keyTable:   DefaultKeyTable(),
		clock:      clock,
		windows:    windows,
		keypadCode: KeyFailure,
	}
}

// HandleKey records a key event; returns false if the key is not bound
func (b *Board) HandleKey(ev *tcell.EventKey) bool {
	entry, ok := b.keyTable.Lookup(ev)
	if !ok {
		return false
	}
	b.Press(entry)
	return true
}

// Press records a bound key event
// The same key arriving while still held is an autorepeat and extends the hold
func (b *Board) Press(entry KeyEntry) {
	now := b.clock.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	switch entry.Group {
	case GroupButtons:
		repeat := b.held(b.button, now) && b.buttonDir == entry.Direction
		b.button = keyHold{seen: now, repeating: repeat}
		b.buttonDir = entry.Direction
	case GroupKeypad:
		repeat := b.held(b.keypad, now) && b.keypadCode == entry.Code
		b.keypad = keyHold{seen: now, repeating: repeat}
		b.keypadCode = entry.Code
	}
}

func (b *Board) held(h keyHold, now time.Time) bool {
	if h.seen.IsZero() {
		return false
	}
	window := b.windows.First
	if h.repeating {
		window = b.windows.Repeat
	}
	return now.Sub(h.seen) < window
}

// Buttons returns the firemen pushbutton view
func (b *Board) Buttons() Directional {
	return boardButtons{b}
}

// Keypad returns the mode/pause keypad view
func (b *Board) Keypad() Keypad {
	return boardKeypad{b}
}

type boardButtons struct{ b *Board }

func (v boardButtons) Pressed() bool {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()
	return v.b.held(v.b.button, v.b.clock.Now())
}

func (v boardButtons) Scan() Direction {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()
	if !v.b.held(v.b.button, v.b.clock.Now()) {
		return DirNone
	}
	return v.b.buttonDir
}

type boardKeypad struct{ b *Board }

func (v boardKeypad) Pressed() bool {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()
	return v.b.held(v.b.keypad, v.b.clock.Now())
}

func (v boardKeypad) Scan() KeyCode {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()
	if !v.b.held(v.b.keypad, v.b.clock.Now()) {
		return KeyFailure
	}
	return v.b.keypadCode
}

// WaitKey blocks until the keypad scans a valid key, retrying every interval
// Returns ctx.Err() if the context ends first
func WaitKey(ctx context.Context, kp Keypad, interval time.Duration) (KeyCode, error) {
	if code := kp.Scan(); code != KeyFailure {
		return code, nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return KeyFailure, ctx.Err()
		case <-ticker.C:
			if code := kp.Scan(); code != KeyFailure {
				return code, nil
			}
		}
	}
}

// WaitRelease blocks until the keypad reports no key held, polling every interval
// The menu calls it so a key still held from the last session is not read as a selection
func WaitRelease(ctx context.Context, kp Keypad, interval time.Duration) error {
	if !kp.Pressed() {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !kp.Pressed() {
				return nil
			}
		}
	}
}
