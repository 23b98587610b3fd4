package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/firemen/constants"
)

// SoundManager mixes sound effects and optional music onto the speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	recorder    *Recorder
	music       *MusicStream
	musicCtrl   *beep.Ctrl
	muted       atomic.Bool
	initialized bool
}

// NewSoundManager creates a sound manager; cfg nil uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// AttachRecorder tees the mixed output into r; call before Initialize
func (sm *SoundManager) AttachRecorder(r *Recorder) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.recorder = r
}

// Initialize opens the speaker; a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	var out beep.Streamer = sm.mixer
	if sm.recorder != nil {
		out = sm.recorder.Wrap(sm.mixer)
	}
	speaker.Play(out)
	sm.initialized = true
	return nil
}

// Play queues a sound effect; false when the effect was not started
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.cfg.Enabled || sm.muted.Load() {
		return false
	}
	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// PlayMusic loops m under the effects
func (sm *SoundManager) PlayMusic(m *MusicStream) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	ctrl := &beep.Ctrl{Streamer: m.Resampled(beep.SampleRate(sm.cfg.SampleRate)), Paused: sm.muted.Load()}

	speaker.Lock()
	if sm.musicCtrl != nil {
		sm.musicCtrl.Paused = true
	}
	sm.mixer.Add(ctrl)
	speaker.Unlock()

	if sm.music != nil {
		sm.music.Close()
	}
	sm.music = m
	sm.musicCtrl = ctrl
	return nil
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	muted := !sm.muted.Load()
	sm.muted.Store(muted)

	if sm.initialized && sm.musicCtrl != nil {
		speaker.Lock()
		sm.musicCtrl.Paused = muted
		speaker.Unlock()
	}
	return muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Cleanup silences all streams and finalizes the recorder
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	if sm.music != nil {
		sm.music.Close()
		sm.music = nil
		sm.musicCtrl = nil
	}
	if sm.recorder != nil {
		sm.recorder.Close()
	}

	// beep has no speaker close; an empty mixer streams silence
	sm.initialized = false
}
