package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-pong/input"
)

// ErrQuit is returned by Run when the player asks to leave
var ErrQuit = errors.New("quit requested")

// Renderer paints a settled state, called on the loop goroutine after each tick
type Renderer interface {
	Render(state State, paused bool)
}

// ClockScheduler drives a Game on a fixed tick and feeds it keys
// It is the only goroutine touching the Game: key events arrive over a channel and
// land in the single-slot mailbox, the next tick consumes them
type ClockScheduler struct {
	game     *Game
	renderer Renderer
	keys     *input.KeyTable
	mailbox  input.Mailbox

	tickInterval time.Duration
	clock        *PausableClock

	// OnMute is called for the mute key, nil ignores it
	OnMute func()

	// Tick counter, readable from other goroutines
	tickCount atomic.Uint64
}

// NewClockScheduler creates a scheduler using the game's configured tick interval
func NewClockScheduler(game *Game, renderer Renderer) *ClockScheduler {
	interval := game.Config().TickInterval
	if interval <= 0 {
		interval = DefaultConfig().TickInterval
	}
	return &ClockScheduler{
		game:         game,
		renderer:     renderer,
		keys:         input.DefaultKeyTable(),
		tickInterval: interval,
		clock:        NewPausableClock(),
	}
}

// Run ticks until ctx is cancelled, the event channel closes, or a quit key arrives
// Returns ErrQuit for a quit key or closed channel, ctx.Err() on cancellation
func (cs *ClockScheduler) Run(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	log.WithField("interval", cs.tickInterval).Debug("clock scheduler started")
	cs.render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return ErrQuit
			}
			if !cs.HandleEvent(ev) {
				log.WithField("ticks", cs.TickCount()).Debug("quit key received")
				return ErrQuit
			}

		case <-ticker.C:
			cs.Tick()
		}
	}
}

// HandleEvent routes one terminal event, returns false when the loop should stop
func (cs *ClockScheduler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry := cs.keys.Lookup(ev)
		switch entry.Intent {
		case input.IntentQuit:
			return false
		case input.IntentPause:
			if cs.clock.IsPaused() {
				log.WithField("pause", cs.clock.Resume()).Debug("resumed")
			} else {
				cs.clock.Pause()
				log.WithField("tick", cs.game.Snapshot().Tick).Debug("paused")
			}
			cs.render()
		case input.IntentMute:
			if cs.OnMute != nil {
				cs.OnMute()
			}
		case input.IntentMove:
			cs.mailbox.Put(entry.Key)
		}

	case *tcell.EventResize:
		cs.render()
	}
	return true
}

// Tick runs one simulation step and renders it, a no-op while paused
func (cs *ClockScheduler) Tick() {
	if cs.clock.IsPaused() {
		return
	}
	cs.game.Step(&cs.mailbox)
	cs.tickCount.Add(1)
	cs.render()
}

func (cs *ClockScheduler) render() {
	if cs.renderer != nil {
		cs.renderer.Render(cs.game.Snapshot(), cs.clock.IsPaused())
	}
}

// Paused reports the pause state
func (cs *ClockScheduler) Paused() bool {
	return cs.clock.IsPaused()
}

// PlayTime returns time spent unpaused since the scheduler was created
func (cs *ClockScheduler) PlayTime() time.Duration {
	return cs.clock.PlayTime()
}

// PendingKey returns the unread mailbox key
func (cs *ClockScheduler) PendingKey() input.Key {
	return cs.mailbox.Peek()
}

// TickCount returns the number of steps executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}
