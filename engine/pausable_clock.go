package engine

import (
	"sync"
	"time"
)

// PausableClock measures play time, excluding the spans spent paused
type PausableClock struct {
	mu sync.Mutex

	now   func() time.Time
	start time.Time

	paused     bool
	pauseStart time.Time
	pausedFor  time.Duration
}

// NewPausableClock starts a running clock on the wall clock
func NewPausableClock() *PausableClock {
	return newPausableClock(time.Now)
}

func newPausableClock(now func() time.Time) *PausableClock {
	return &PausableClock{now: now, start: now()}
}

// Pause freezes play time, repeated calls are ignored
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.now()
}

// Resume continues play time and returns how long the pause lasted
func (pc *PausableClock) Resume() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return 0
	}
	d := pc.now().Sub(pc.pauseStart)
	pc.pausedFor += d
	pc.paused = false
	return d
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// PlayTime returns elapsed time minus all pauses, frozen while paused
func (pc *PausableClock) PlayTime() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	end := pc.now()
	if pc.paused {
		end = pc.pauseStart
	}
	return end.Sub(pc.start) - pc.pausedFor
}
