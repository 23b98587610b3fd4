package session

import "github.com/lixenwraith/firemen/input"

// Mode is the game variant; values match the number shown on the HUD
type Mode uint8

const (
	ModeNone     Mode = 0
	ModeClassic  Mode = 1 // Fixed fall speed, ends at the rescue target
	ModeAdvanced Mode = 2 // Fall speed ramps with rescues, ends at the rescue target
	ModeInfinity Mode = 3 // Fall speed ramps with rescues, no rescue target
)

func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "Classic"
	case ModeAdvanced:
		return "Advanced"
	case ModeInfinity:
		return "Infinity"
	default:
		return "None"
	}
}

// Valid reports whether m is a playable mode
func (m Mode) Valid() bool {
	return m >= ModeClassic && m <= ModeInfinity
}

// ScalesDifficulty reports whether rescues speed up the dummy
func (m Mode) ScalesDifficulty() bool {
	return m == ModeAdvanced || m == ModeInfinity
}

// HasRescueTarget reports whether reaching the rescue target wins the session
func (m Mode) HasRescueTarget() bool {
	return m == ModeClassic || m == ModeAdvanced
}

// ModeForKey maps a keypad code to the mode it selects
func ModeForKey(code input.KeyCode) (Mode, bool) {
	switch code {
	case input.KeyModeClassic:
		return ModeClassic, true
	case input.KeyModeAdvanced:
		return ModeAdvanced, true
	case input.KeyModeInfinity:
		return ModeInfinity, true
	default:
		return ModeNone, false
	}
}
