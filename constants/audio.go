package constants

import "time"

// Sound effect timing
const (
	BellSoundDuration           = 400 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 350 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond

	CrashSoundDuration = 300 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 200 * time.Millisecond

	WhooshSoundDuration = 250 * time.Millisecond
	WhooshSoundAttack   = 20 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond

	BlipSoundDuration = 60 * time.Millisecond
	BlipSoundAttack   = 2 * time.Millisecond
	BlipSoundRelease  = 40 * time.Millisecond

	ChimeSoundNote1Duration = 120 * time.Millisecond
	ChimeSoundNote2Duration = 400 * time.Millisecond
	ChimeSoundAttack        = 5 * time.Millisecond
	ChimeSoundNote1Release  = 80 * time.Millisecond
	ChimeSoundNote2Release  = 300 * time.Millisecond
)

// Speaker buffering
const AudioBufferDuration = 100 * time.Millisecond
