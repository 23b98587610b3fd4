package constants

// LCD geometry of the emulated board (pixels)
const (
	LCDWidth  = 320
	LCDHeight = 240
)

// Terminal cell size in LCD pixels; the LCD maps onto a 40x15 cell grid
const (
	CellWidth  = 8
	CellHeight = 16
)

// HUD anchors (LCD pixels)
const (
	TitleX, TitleY       = 60, 0
	MenuX                = 10
	MenuFirstY, MenuStep = 40, 30
	ModeLabelX           = 150
	ModeValueX           = 230
	HUDY                 = 0
	RescuedX             = 287
	GameOverX            = 88
	GameOverY            = 120
)

// HUD strings
const (
	TitleText     = "NINTENDO GAME"
	ModeLabelText = "Mode: "
	PauseText     = "PAUSE "
	GameOverText  = "GAME OVER "
	ExitText      = "EXIT"
	BlankDigit    = " "
)
