package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Blip Tones (Hz)
const (
	PlayerHitFreq   = 440.0
	ComputerHitFreq = 330.0
	WallBounceFreq  = 220.0
	ScoreLowFreq    = 660.0
	ScoreHighFreq   = 880.0
)

// Blip Durations
const (
	HitSoundDuration  = 40 * time.Millisecond
	WallSoundDuration = 30 * time.Millisecond
	ScoreNoteDuration = 90 * time.Millisecond
	ScoreNoteGap      = 30 * time.Millisecond
)
