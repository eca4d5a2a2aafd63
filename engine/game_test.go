package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/vmath"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(DefaultConfig())
}

func collect(g *Game) *[]Event {
	var got []Event
	g.Subscribe(func(ev Event) { got = append(got, ev) })
	return &got
}

func hasEvent(events []Event, typ EventType, side components.Side) bool {
	for _, ev := range events {
		if ev.Type == typ && ev.Side == side {
			return true
		}
	}
	return false
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t)
	s := g.Snapshot()

	assert.Equal(t, uint64(0), s.Tick)
	assert.Equal(t, components.NewCourt(), s.Court)
	assert.Equal(t, vmath.Point{X: 2, Y: 9}, s.Player.Position)
	assert.Equal(t, vmath.Point{X: 55, Y: 9}, s.Computer.Position)
	assert.Equal(t, vmath.V(25, 11), s.Ball.Position)
	assert.Equal(t, 1.0, s.Ball.Velocity.X)
	assert.Equal(t, 0.5, math.Abs(s.Ball.Velocity.Y))
	assert.Equal(t, components.ScoreboardComponent{}, s.Score)
}

func TestZeroTicksIsIdentity(t *testing.T) {
	a := NewGame(DefaultConfig())
	b := NewGame(DefaultConfig())

	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Equal(t, a.Snapshot(), a.Snapshot())
}

func TestSameSeedSameMatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 12345
	a := NewGame(cfg)
	b := NewGame(cfg)

	keys := []input.Key{input.KeyUp, input.KeyNone, input.KeyJ, input.KeyOther, input.KeyDown}
	var ma, mb input.Mailbox
	for i := 0; i < 500; i++ {
		ma.Put(keys[i%len(keys)])
		mb.Put(keys[i%len(keys)])
		a.Step(&ma)
		b.Step(&mb)
	}

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestInvariantsHoldOverLongRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.ServeAfterScore = true
	g := NewGame(cfg)
	rng := vmath.NewFastRand(7)
	keys := []input.Key{input.KeyNone, input.KeyUp, input.KeyDown, input.KeyK, input.KeyJ, input.KeyOther}

	var mb input.Mailbox
	prev := g.Scoreboard()
	for i := 0; i < 5000; i++ {
		mb.Put(keys[rng.Intn(len(keys))])
		g.Step(&mb)
		s := g.Snapshot()

		require.Equal(t, 1.0, math.Abs(s.Ball.Velocity.X), "tick %d", s.Tick)
		require.Equal(t, 0.5, math.Abs(s.Ball.Velocity.Y), "tick %d", s.Tick)
		for _, p := range []components.PaddleComponent{s.Player, s.Computer} {
			require.True(t, vmath.InRange(p.Position.Y, 0, s.Court.Height-p.Size.Height), "tick %d: %s y=%d", s.Tick, p.Side, p.Position.Y)
		}
		require.Equal(t, 2, s.Player.Position.X)
		require.Equal(t, 55, s.Computer.Position.X)
		require.GreaterOrEqual(t, s.Score.Player, prev.Player)
		require.GreaterOrEqual(t, s.Score.Computer, prev.Computer)
		prev = s.Score
	}
}

func TestStepComputerDeflection(t *testing.T) {
	g := newTestGame(t)
	events := collect(g)
	g.ball.Position = vmath.V(55, 10)
	g.ball.Velocity = vmath.V(1, 0.5)

	var mb input.Mailbox
	g.Step(&mb)

	s := g.Snapshot()
	assert.Equal(t, -1.0, s.Ball.Velocity.X)
	assert.Equal(t, 0.5, s.Ball.Velocity.Y)
	assert.Equal(t, vmath.V(54, 10.5), s.Ball.Position)
	assert.True(t, hasEvent(*events, EventPaddleHit, components.SideComputer))
}

func TestStepWallBounceKeepsDx(t *testing.T) {
	g := newTestGame(t)
	events := collect(g)
	g.ball.Position = vmath.V(30, 0)
	g.ball.Velocity = vmath.V(1, -0.5)

	var mb input.Mailbox
	g.Step(&mb)

	s := g.Snapshot()
	assert.Equal(t, 0.5, s.Ball.Velocity.Y)
	assert.Equal(t, 1.0, s.Ball.Velocity.X)
	assert.Equal(t, vmath.V(31, 0.5), s.Ball.Position)
	assert.True(t, hasEvent(*events, EventWallBounce, components.SideNone))
}

func TestStepScorePastPlayer(t *testing.T) {
	g := newTestGame(t)
	g.ball.Position = vmath.V(-3, 20)
	g.ball.Velocity = vmath.V(-1, 0.5)

	var mb input.Mailbox
	events := g.Step(&mb)

	s := g.Snapshot()
	assert.Equal(t, 1, s.Score.Computer)
	assert.Equal(t, 0, s.Score.Player)
	require.True(t, hasEvent(events, EventScore, components.SideComputer))
	for _, ev := range events {
		if ev.Type == EventScore {
			assert.Equal(t, s.Score, ev.Score)
			assert.Equal(t, uint64(1), ev.Tick)
		}
	}
}

func TestNoServeAfterScoreByDefault(t *testing.T) {
	g := newTestGame(t)
	g.ball.Position = vmath.V(-3, 20)
	g.ball.Velocity = vmath.V(-1, 0.5)

	var mb input.Mailbox
	for i := 0; i < 10; i++ {
		g.Step(&mb)
	}

	s := g.Snapshot()
	assert.Equal(t, -13.0, s.Ball.Position.X, "ball keeps drifting out of the court")
	assert.Equal(t, 1, s.Score.Computer, "one exit, one point")
}

func TestServeAfterScoreOptIn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ServeAfterScore = true
	g := NewGame(cfg)
	g.ball.Position = vmath.V(57, 3)
	g.ball.Velocity = vmath.V(1, 0.5)

	var mb input.Mailbox
	events := g.Step(&mb)

	s := g.Snapshot()
	assert.Equal(t, 1, s.Score.Player)
	assert.Equal(t, vmath.V(25, 11), s.Ball.Position)
	assert.Equal(t, 1.0, s.Ball.Velocity.X)
	assert.Equal(t, components.SideNone, s.Ball.Out)
	assert.True(t, hasEvent(events, EventServe, components.SideNone))
}

func TestLinearFlightFourteenTicks(t *testing.T) {
	g := newTestGame(t)
	s := g.Snapshot()
	require.Equal(t, 25, s.Court.Height)
	require.Equal(t, 59, s.Court.Width)

	var mb input.Mailbox
	for i := 0; i < 14; i++ {
		g.Step(&mb)
	}

	s = g.Snapshot()
	assert.InDelta(t, 39.0, s.Ball.Position.X, 1e-9)
	assert.Equal(t, 1.0, s.Ball.Velocity.X)
	assert.InDelta(t, 7.0, math.Abs(s.Ball.Position.Y-11), 1e-9)
}

func TestDownAtBottomIsNoop(t *testing.T) {
	g := newTestGame(t)
	g.player.Position.Y = g.court.Height - g.player.Size.Height

	var mb input.Mailbox
	mb.Put(input.KeyDown)
	events := g.Step(&mb)

	assert.Equal(t, 21, g.Snapshot().Player.Position.Y)
	assert.Equal(t, input.KeyNone, mb.Peek(), "key consumed even without movement")
	assert.False(t, hasEvent(events, EventPaddleMoved, components.SidePlayer))
}

func TestKeyConsumedAfterOneTick(t *testing.T) {
	g := newTestGame(t)

	var mb input.Mailbox
	mb.Put(input.KeyK)
	g.Step(&mb)
	g.Step(&mb)

	assert.Equal(t, 8, g.Snapshot().Player.Position.Y, "one key, one cell")
}

func TestPaddleMoveCountsOnSameTick(t *testing.T) {
	g := newTestGame(t)
	g.player.Position.Y = 13 // rows 13..17
	g.ball.Position = vmath.V(2, 12)
	g.ball.Velocity = vmath.V(-1, 0.5)

	var mb input.Mailbox
	mb.Put(input.KeyUp) // rows 12..16 now cover the ball
	events := g.Step(&mb)

	assert.Equal(t, 1.0, g.Snapshot().Ball.Velocity.X)
	assert.True(t, hasEvent(events, EventPaddleMoved, components.SidePlayer))
	assert.True(t, hasEvent(events, EventPaddleHit, components.SidePlayer))
}

func TestStepReturnsFreshEventSlice(t *testing.T) {
	g := newTestGame(t)
	g.ball.Position = vmath.V(30, 0)
	g.ball.Velocity = vmath.V(1, -0.5)

	var mb input.Mailbox
	first := g.Step(&mb)
	require.NotEmpty(t, first)
	snapshot := append([]Event(nil), first...)

	g.Step(&mb)
	assert.Equal(t, snapshot, first)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "score", EventScore.String())
	assert.Equal(t, "unknown", EventType(99).String())
}
