package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// AudioConfig holds volume and output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundBounce:     0.4,
			SoundCrash:      0.8,
			SoundRescue:     1.0,
			SoundWin:        0.6,
			SoundGameOver:   0.8,
			SoundModeChange: 0.5,
			SoundPause:      0.4,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("FIREMEN_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment, 0.0-1.0 internally
	if volume := os.Getenv("FIREMEN_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Effect volumes as a JSON object keyed by sound name
	if effectVols := os.Getenv("FIREMEN_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("FIREMEN_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
