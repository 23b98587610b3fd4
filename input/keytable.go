package input

import "github.com/gdamore/tcell/v2"

// Group is the physical control a key is wired to
type Group uint8

const (
	GroupNone Group = iota
	GroupButtons
	GroupKeypad
)

// KeyEntry describes what a terminal key emulates on the board
type KeyEntry struct {
	Group     Group
	Direction Direction // GroupButtons only
	Code      KeyCode   // GroupKeypad only
}

// KeyTable maps terminal keys to board controls
type KeyTable struct {
	// Special keys (arrows, Escape)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the standard layout:
// arrows/h/l drive the firemen, 1-3 pick a mode, p/space pause, q/Esc exit from the menu
func DefaultKeyTable() *KeyTable {
	left := KeyEntry{Group: GroupButtons, Direction: DirLeft}
	right := KeyEntry{Group: GroupButtons, Direction: DirRight}
	pad := func(c KeyCode) KeyEntry { return KeyEntry{Group: GroupKeypad, Code: c} }

	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:   left,
			tcell.KeyRight:  right,
			tcell.KeyEscape: pad(KeyExit),
		},
		Runes: map[rune]KeyEntry{
			'h': left,
			'a': left,
			'l': right,
			'd': right,
			'1': pad(KeyModeClassic),
			'2': pad(KeyModeAdvanced),
			'3': pad(KeyModeInfinity),
			'p': pad(KeyPause),
			' ': pad(KeyPause),
			'q': pad(KeyExit),
		},
	}
}

// Lookup resolves a key event; ok is false for unbound keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}
