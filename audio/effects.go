package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/firemen/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-length wave generator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope wraps s with an attack/release gain curve
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero or negative gain is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, wave WaveType, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

func finish(s beep.Streamer, st SoundType, cfg *AudioConfig) beep.Streamer {
	return newVolume(s, cfg.EffectVolumes[st]*cfg.MasterVolume)
}

// CreateBounceSound generates the short blip of a catch
func CreateBounceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(660, WaveSquare, constants.BlipSoundDuration, constants.BlipSoundAttack, constants.BlipSoundRelease, rate)
	return finish(s, SoundBounce, cfg)
}

// CreateCrashSound generates a noise burst over a low saw
func CreateCrashSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.CrashSoundDuration
	noise := tone(0, WaveNoise, d, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)
	thud := tone(90, WaveSaw, d, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)
	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(thud, 0.4))
	return finish(mixed, SoundCrash, cfg)
}

// CreateRescueSound generates a bell for a delivered dummy
func CreateRescueSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.BellSoundDuration

	// A5 with an octave overtone
	fund := tone(880, WaveSine, d, constants.BellSoundAttack, constants.BellSoundFundamentalRelease, rate)
	over := tone(1760, WaveSine, d, constants.BellSoundAttack, constants.BellSoundOvertoneRelease, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return finish(mixed, SoundRescue, cfg)
}

// twoNote plays n1 then n2 with the chime timing
func twoNote(f1, f2 float64, rate beep.SampleRate) beep.Streamer {
	n1 := tone(f1, WaveSquare, constants.ChimeSoundNote1Duration, constants.ChimeSoundAttack, constants.ChimeSoundNote1Release, rate)
	n2 := tone(f2, WaveSquare, constants.ChimeSoundNote2Duration, constants.ChimeSoundAttack, constants.ChimeSoundNote2Release, rate)
	return beep.Seq(n1, n2)
}

// CreateWinSound generates a rising chime (B5, E6)
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	return finish(twoNote(987.77, 1318.51, beep.SampleRate(cfg.SampleRate)), SoundWin, cfg)
}

// CreateGameOverSound generates a falling chime (E4, A3)
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	return finish(twoNote(329.63, 220.0, beep.SampleRate(cfg.SampleRate)), SoundGameOver, cfg)
}

// CreateModeChangeSound generates a noise sweep
func CreateModeChangeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(0, WaveNoise, constants.WhooshSoundDuration, constants.WhooshSoundAttack, constants.WhooshSoundRelease, rate)
	return finish(s, SoundModeChange, cfg)
}

// CreatePauseSound generates a low blip
func CreatePauseSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(330, WaveSine, constants.BlipSoundDuration, constants.BlipSoundAttack, constants.BlipSoundRelease, rate)
	return finish(s, SoundPause, cfg)
}

// GetSoundEffect returns a fresh streamer for soundType, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundBounce:
		return CreateBounceSound(cfg)
	case SoundCrash:
		return CreateCrashSound(cfg)
	case SoundRescue:
		return CreateRescueSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	case SoundModeChange:
		return CreateModeChangeSound(cfg)
	case SoundPause:
		return CreatePauseSound(cfg)
	default:
		return nil
	}
}
