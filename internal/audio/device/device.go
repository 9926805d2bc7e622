// Package device plays audio cues through the system speaker. It is the only
// package that links the cgo output backend; games depend on audio.Player.
package device

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bakery-catch/internal/audio"
)

// SoundManager plays cues through the system speaker.
// Until Initialize succeeds every Play is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	clips       map[audio.Cue][][2]float64
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager with all cues prerendered.
func NewSoundManager(muted bool) *SoundManager {
	cues := audio.Cues()
	sm := &SoundManager{
		mixer: &beep.Mixer{},
		clips: make(map[audio.Cue][][2]float64, len(cues)),
		muted: muted,
	}
	for _, c := range cues {
		sm.clips[c] = audio.Render(c, audio.SampleRate)
	}
	return sm
}

// Initialize sets up the audio device. A failure leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := audio.SampleRate
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
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

// Play implements audio.Player.
func (sm *SoundManager) Play(c audio.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	data, ok := sm.clips[c]
	if !ok {
		return
	}

	speaker.Lock()
	sm.mixer.Add(&clip{data: data})
	speaker.Unlock()
}

// ToggleMute flips the mute flag and returns the new value.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether cues are suppressed.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// clip streams a prerendered buffer once.
type clip struct {
	data [][2]float64
	pos  int
}

func (c *clip) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	n := copy(samples, c.data[c.pos:])
	c.pos += n
	return n, true
}

func (c *clip) Err() error {
	return nil
}
