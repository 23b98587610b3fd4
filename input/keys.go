package input

// Direction is a pushbutton scan result
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// KeyCode is a 4x4 keypad scan result
type KeyCode uint8

const (
	Key0 KeyCode = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF

	// KeyFailure is returned by a scan while no key is down
	KeyFailure KeyCode = 0xFF
)

// Keypad roles on the board
const (
	KeyModeClassic  = Key0
	KeyModeAdvanced = Key1
	KeyModeInfinity = Key2
	KeyPause        = Key3
	KeyExit         = KeyF
)

// Directional is the firemen pushbutton pair
type Directional interface {
	// Pressed reports whether a button is currently held
	Pressed() bool
	// Scan returns the held button, DirNone if released
	Scan() Direction
}

// Keypad is the mode/pause keypad
type Keypad interface {
	// Pressed reports whether a key is currently held
	Pressed() bool
	// Scan returns the held key, KeyFailure if released
	Scan() KeyCode
}
