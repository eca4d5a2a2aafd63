package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeNow struct{ t time.Time }

func (f *fakeNow) Now() time.Time          { return f.t }
func (f *fakeNow) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestPausableClockExcludesPauses(t *testing.T) {
	clock := &fakeNow{t: time.Unix(1000, 0)}
	pc := newPausableClock(clock.Now)

	clock.Advance(3 * time.Second)
	assert.Equal(t, 3*time.Second, pc.PlayTime())

	pc.Pause()
	assert.True(t, pc.IsPaused())
	clock.Advance(10 * time.Second)
	assert.Equal(t, 3*time.Second, pc.PlayTime(), "frozen while paused")

	assert.Equal(t, 10*time.Second, pc.Resume())
	assert.False(t, pc.IsPaused())

	clock.Advance(2 * time.Second)
	assert.Equal(t, 5*time.Second, pc.PlayTime())
}

func TestPausableClockIgnoresRepeats(t *testing.T) {
	clock := &fakeNow{t: time.Unix(0, 0)}
	pc := newPausableClock(clock.Now)

	assert.Zero(t, pc.Resume(), "resume while running")

	pc.Pause()
	clock.Advance(time.Second)
	pc.Pause()
	clock.Advance(time.Second)

	assert.Equal(t, 2*time.Second, pc.Resume(), "second pause keeps the first start")
}
