// Package audio plays short procedural sound effects.
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Clear tone parameters.
const (
	baseFrequency = 330.0 // Hz, one cleared cell
	maxSemitones  = 24
	toneDuration  = 90 * time.Millisecond
)

// ErrNotInitialized is returned when playing before Init succeeded.
var ErrNotInitialized = errors.New("audio not initialized")

// Manager owns the speaker and a mixer that sound effects are added to.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	volume float64 // 0.0 to 1.0
	muted  bool

	// SFX mixer for concurrent sound effects
	sfxMixer *beep.Mixer
}

// New creates a new audio manager.
func New(volume float64, muted bool) *Manager {
	return &Manager{
		sampleRate: DefaultSampleRate,
		volume:     clamp(volume, 0, 1),
		muted:      muted,
		sfxMixer:   &beep.Mixer{},
	}
}

// Init opens the audio device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.sfxMixer)

	m.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// Muted reports whether effects are silenced.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// SetMuted enables or disables all effects. Unmuting opens the audio device
// if it was never opened; on failure the manager stays muted.
func (m *Manager) SetMuted(muted bool) error {
	if !muted && !m.IsInitialized() {
		if err := m.Init(); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	return nil
}

// PlayClear plays a short tone whose pitch rises with the number of cells cleared.
// Nothing is played when no cell changed or the manager is muted.
func (m *Manager) PlayClear(cleared int) error {
	m.mu.RLock()
	initialized, vol, muted := m.initialized, m.volume, m.muted
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}
	if muted || cleared <= 0 || vol <= 0 {
		return nil
	}

	speaker.Lock()
	m.sfxMixer.Add(&effects.Volume{
		Streamer: tone(m.sampleRate, ToneFrequency(cleared), toneDuration),
		Base:     2,
		Volume:   volumeToDb(vol),
	})
	speaker.Unlock()
	return nil
}

// ToneFrequency returns the pitch for a clear of n cells: one semitone per extra
// cell above the base, capped at two octaves.
func ToneFrequency(n int) float64 {
	steps := min(max(n-1, 0), maxSemitones)
	return baseFrequency * math.Pow(2, float64(steps)/12)
}

// tone returns a sine wave of the given length with a linear fade-out.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(step*float64(pos)) * env
			samples[n][0], samples[n][1] = v, v
			n++
			pos++
		}
		return n, true
	})
}

// volumeToDb converts a 0-1 volume to a base-2 exponent for effects.Volume.
// vol=1 -> 0, vol=0.5 -> -1, vol=0.25 -> -2.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
