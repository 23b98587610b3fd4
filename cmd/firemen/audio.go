package main

import (
	"log"
	"os"

	"github.com/lixenwraith/firemen/audio"
)

// setupAudio opens the speaker with env configuration
// Returns nil when audio is disabled or unavailable; the game then runs silent
func setupAudio(mute bool, recordPath, musicPath string) *audio.SoundManager {
	cfg := audio.LoadAudioConfig()
	if !cfg.Enabled {
		log.Printf("audio: disabled by environment")
		return nil
	}

	sm := audio.NewSoundManager(cfg)

	var rec *audio.Recorder
	if recordPath != "" {
		f, err := os.Create(recordPath)
		if err != nil {
			log.Printf("audio: recorder: %v", err)
		} else {
			rec = audio.NewRecorder(f, cfg.SampleRate)
			sm.AttachRecorder(rec)
		}
	}

	if err := sm.Initialize(); err != nil {
		log.Printf("audio: initialization failed: %v (continuing without audio)", err)
		if rec != nil {
			rec.Close()
		}
		return nil
	}

	if mute {
		sm.ToggleMute()
	}

	if musicPath != "" {
		if err := startMusic(sm, musicPath); err != nil {
			log.Printf("audio: music: %v", err)
		}
	}
	return sm
}

func startMusic(sm *audio.SoundManager, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	m, err := audio.NewMusicStream(f)
	if err != nil {
		f.Close()
		return err
	}
	return sm.PlayMusic(m)
}
