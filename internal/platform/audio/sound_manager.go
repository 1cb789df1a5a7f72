// Package audio plays sound effects for a cascade session through the
// system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	effectVolume = 0.6
	musicVolume  = 0.5
)

// SoundManager implements cascade.Observer: a chime on every match that
// rises with the combo, a buzz when the game ends and background music
// while a round runs. Before Initialize succeeds every call is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	logger      *log.Logger
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	// play hands a finished sound to the output. Replaced in tests.
	play func(s beep.Streamer)
}

// NewSoundManager creates a silent sound manager.
func NewSoundManager(logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	sm := &SoundManager{
		logger: logger,
		mixer:  &beep.Mixer{},
	}
	sm.play = sm.addToMixer
	return sm
}

// Initialize opens the speaker. On failure the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("audio initialized", "sample_rate", int(sampleRate))
	return nil
}

// Close stops every sound. The speaker itself stays open for the process.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.music = nil
	sm.initialized = false
}

// OnUpdate plays the match chime and starts the music at game start.
func (sm *SoundManager) OnUpdate(score, combo int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if score == 0 && combo == 0 {
		sm.startMusic()
		return
	}
	if combo > 0 {
		sm.play(withVolume(chime(combo), effectVolume))
	}
}

// OnGameEnded stops the music and plays the game over buzz.
func (sm *SoundManager) OnGameEnded(int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.stopMusic()
	sm.play(withVolume(buzz(), effectVolume))
}

// startMusic resumes the loop or adds it on first use. Caller holds mu.
func (sm *SoundManager) startMusic() {
	if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = false
		speaker.Unlock()
		return
	}
	sm.music = &beep.Ctrl{Streamer: withVolume(musicLoop(), musicVolume)}
	sm.play(sm.music)
}

// stopMusic pauses the loop. Caller holds mu.
func (sm *SoundManager) stopMusic() {
	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

func (sm *SoundManager) addToMixer(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
