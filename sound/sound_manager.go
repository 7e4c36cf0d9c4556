// Package sound plays short synthesized effects for game events.
package sound

import (
	"sync"
	"time"

	"elastic-snake/game"

	"github.com/golang/glog"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager turns game events into sounds. Until Initialize succeeds
// every call is a no-op, so the game runs the same without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops anything still playing.
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

// Handle implements game.EventSink.
func (sm *SoundManager) Handle(e game.Event) {
	switch e.Type {
	case game.EventFruitEaten:
		sm.play(fruitSound())
	case game.EventGameOver:
		sm.play(gameOverSound())
	case game.EventPaused, game.EventResumed:
		sm.play(clickSound())
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	glog.V(2).Infof("sound queued, %d streamers active", sm.mixer.Len())
}

// Two rising notes.
func fruitSound() beep.Streamer {
	return beep.Seq(
		beep.Take(sampleRate.N(60*time.Millisecond), NewToneGenerator(sampleRate, 660, WaveSquare)),
		beep.Take(sampleRate.N(90*time.Millisecond), NewToneGenerator(sampleRate, 990, WaveSquare)),
	)
}

func gameOverSound() beep.Streamer {
	return beep.Take(sampleRate.N(400*time.Millisecond), NewSweepGenerator(sampleRate, 440, 110))
}

func clickSound() beep.Streamer {
	return beep.Take(sampleRate.N(30*time.Millisecond), NewToneGenerator(sampleRate, 1200, WaveSine))
}
