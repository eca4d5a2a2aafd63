package engine

import (
	"time"

	"github.com/lixenwraith/vi-pong/constants"
)

// Config holds the runtime knobs of a game session
type Config struct {
	// TickInterval is the simulation step period
	TickInterval time.Duration

	// Seed drives the serve direction, the same seed replays the same match
	Seed uint64

	// ServeAfterScore re-spawns the ball at the serve point after a point is scored
	// Off by default: the ball keeps flying past the court edge
	ServeAfterScore bool
}

// DefaultConfig returns the 30 Hz configuration without re-serve
func DefaultConfig() Config {
	return Config{
		TickInterval: constants.GameUpdateInterval,
		Seed:         1,
	}
}
