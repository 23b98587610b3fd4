package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundBounce     SoundType = iota // Dummy caught at a checkpoint
	SoundCrash                       // Dummy hit the ground
	SoundRescue                      // Dummy reached the ambulance
	SoundWin                         // Rescue target reached
	SoundGameOver                    // Lives exhausted
	SoundModeChange                  // Mode switched mid-game
	SoundPause                       // Pause toggled
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundBounce:     "bounce",
	SoundCrash:      "crash",
	SoundRescue:     "rescue",
	SoundWin:        "win",
	SoundGameOver:   "gameover",
	SoundModeChange: "mode",
	SoundPause:      "pause",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrRecorderClosed = errors.New("audio recorder closed")
)
