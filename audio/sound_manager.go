package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// Tone is one note of a blip, Freq 0 is a rest
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// TonesFor maps a game event to the blip it plays, nil for silent events
func TonesFor(ev engine.Event) []Tone {
	switch ev.Type {
	case engine.EventPaddleHit:
		freq := constants.PlayerHitFreq
		if ev.Side == components.SideComputer {
			freq = constants.ComputerHitFreq
		}
		return []Tone{{freq, constants.HitSoundDuration}}
	case engine.EventWallBounce:
		return []Tone{{constants.WallBounceFreq, constants.WallSoundDuration}}
	case engine.EventScore:
		first, second := constants.ScoreLowFreq, constants.ScoreHighFreq
		if ev.Side == components.SideComputer {
			first, second = second, first
		}
		return []Tone{
			{first, constants.ScoreNoteDuration},
			{0, constants.ScoreNoteGap},
			{second, constants.ScoreNoteDuration},
		}
	}
	return nil
}

// NewToneStreamer renders tones into a finite streamer
func NewToneStreamer(tones []Tone) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		n := sampleRate.N(t.Duration)
		if t.Freq == 0 {
			parts = append(parts, beep.Silence(n))
			continue
		}
		sine, err := generators.SineTone(sampleRate, t.Freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0f Hz: %w", t.Freq, err)
		}
		parts = append(parts, beep.Take(n, sine))
	}
	return beep.Seq(parts...), nil
}

// SoundManager plays blips for game events through the speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops playback and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	log.WithField("muted", sm.muted).Debug("sound toggled")
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// HandleEvent plays the blip for ev, usable as an engine.Handler
func (sm *SoundManager) HandleEvent(ev engine.Event) {
	tones := TonesFor(ev)
	if len(tones) == 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer, err := NewToneStreamer(tones)
	if err != nil {
		log.WithError(err).WithField("event", ev.Type).Warn("blip skipped")
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
