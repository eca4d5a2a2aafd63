package engine

import (
	"github.com/lixenwraith/vi-pong/components"
)

// EventType represents the type of game event
type EventType int

const (
	// EventPaddleMoved signals a paddle moved one cell
	// Side: which paddle
	EventPaddleMoved EventType = iota

	// EventPaddleHit signals the ball was deflected by a paddle
	// Side: which paddle
	EventPaddleHit

	// EventWallBounce signals the ball touched the top or bottom wall
	EventWallBounce

	// EventScore signals a point was awarded
	// Side: the scoring side, Score: the scoreboard after the award
	EventScore

	// EventServe signals the ball was put back at the serve point
	EventServe
)

var eventTypeNames = map[EventType]string{
	EventPaddleMoved: "paddle_moved",
	EventPaddleHit:   "paddle_hit",
	EventWallBounce:  "wall_bounce",
	EventScore:       "score",
	EventServe:       "serve",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is a state-change notification emitted by Game.Step
type Event struct {
	Type  EventType
	Tick  uint64
	Side  components.Side
	Score components.ScoreboardComponent
}

// Handler receives events synchronously from inside Step, on the game loop goroutine
type Handler func(Event)
