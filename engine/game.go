package engine

import (
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/systems"
	"github.com/lixenwraith/vi-pong/vmath"
)

// State is a value copy of everything the simulation owns
type State struct {
	Tick     uint64
	Court    components.CourtComponent
	Player   components.PaddleComponent
	Computer components.PaddleComponent
	Ball     components.BallComponent
	Score    components.ScoreboardComponent
}

// Game owns the simulation state and advances it one tick at a time
// Not safe for concurrent use: one goroutine (the game loop) calls Step
type Game struct {
	config Config
	rng    *vmath.FastRand

	tick     uint64
	court    components.CourtComponent
	player   components.PaddleComponent
	computer components.PaddleComponent
	ball     components.BallComponent
	score    components.ScoreboardComponent

	handlers []Handler
	events   []Event
}

// NewGame creates the court, both paddles and the ball
func NewGame(cfg Config) *Game {
	g := &Game{
		config:   cfg,
		rng:      vmath.NewFastRand(cfg.Seed),
		court:    components.NewCourt(),
		player:   components.NewPlayerPaddle(),
		computer: components.NewComputerPaddle(),
	}
	g.ball = g.serve()
	return g
}

// serve spawns a ball with a random vertical direction
func (g *Game) serve() components.BallComponent {
	return components.NewBall(g.rng.Bool())
}

// Subscribe registers a handler called for every event emitted by Step
func (g *Game) Subscribe(h Handler) {
	g.handlers = append(g.handlers, h)
}

// Config returns the session configuration
func (g *Game) Config() Config {
	return g.config
}

// Snapshot returns a copy of the current state
func (g *Game) Snapshot() State {
	return State{
		Tick:     g.tick,
		Court:    g.court,
		Player:   g.player,
		Computer: g.computer,
		Ball:     g.ball,
		Score:    g.score,
	}
}

// Scoreboard returns the current points
func (g *Game) Scoreboard() components.ScoreboardComponent {
	return g.score
}

// Step runs one fixed-timestep tick and returns the events it produced
//
// Order: player input, computer AI, computer collision, player collision, wall
// collision, scoring, ball integration. The mailbox key is taken at the start and
// never restored, so it is consumed even when it did not move the paddle.
// Paddle moves land before the collision tests of the same tick.
func (g *Game) Step(mb *input.Mailbox) []Event {
	g.tick++
	g.events = nil

	key := mb.Take()
	if systems.ApplyInput(&g.player, g.court, key) {
		g.emit(Event{Type: EventPaddleMoved, Side: components.SidePlayer})
	}

	if systems.ComputerAI(&g.computer, g.ball, g.court) != 0 {
		g.emit(Event{Type: EventPaddleMoved, Side: components.SideComputer})
	}

	if systems.CollideComputer(&g.ball, g.computer) {
		g.emit(Event{Type: EventPaddleHit, Side: components.SideComputer})
	}
	if systems.CollidePlayer(&g.ball, g.player) {
		g.emit(Event{Type: EventPaddleHit, Side: components.SidePlayer})
	}
	if systems.CollideCourt(&g.ball, g.court) {
		g.emit(Event{Type: EventWallBounce})
	}

	if side := systems.Score(&g.ball, g.court, &g.score); side != components.SideNone {
		g.emit(Event{Type: EventScore, Side: side, Score: g.score})
		if g.config.ServeAfterScore {
			g.ball = g.serve()
			g.emit(Event{Type: EventServe})
			return g.events
		}
	}

	systems.IntegrateBall(&g.ball)
	return g.events
}

func (g *Game) emit(ev Event) {
	ev.Tick = g.tick
	g.events = append(g.events, ev)
	for _, h := range g.handlers {
		h(ev)
	}
}
