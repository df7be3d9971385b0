package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lguibr/duopong/game"
)

const defaultVolume = -1

// SoundManager plays short synthesized sounds for game events. All methods
// are no-ops until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds. beep has no way to close the speaker, so the
// mixer is cleared and further calls are ignored.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayEvents queues the sound of the most important event in events: a point
// outranks a paddle hit, which outranks a wall bounce.
func (sm *SoundManager) PlayEvents(events game.Events) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer, err := sm.streamerFor(events)
	if err != nil {
		fmt.Printf("Audio: could not build sound for %s: %v\n", events, err)
		return
	}
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

func (sm *SoundManager) streamerFor(events game.Events) (beep.Streamer, error) {
	switch {
	case events.Scored():
		return newMelody(sampleRate, scoreTones, sm.volume)
	case events.Has(game.EventPaddleHit):
		return newTone(sampleRate, paddleHitTone, sm.volume)
	case events.Has(game.EventWallBounce):
		return newTone(sampleRate, wallBounceTone, sm.volume)
	}
	return nil, nil
}
