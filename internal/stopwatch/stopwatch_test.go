package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func TestTicToc(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	sw := NewWithClock(clock.now)

	clock.t = clock.t.Add(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, sw.Toc())
	assert.InDelta(t, 1.5, sw.Seconds(), 1e-9)

	sw.Tic()
	clock.t = clock.t.Add(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, sw.Toc())
}

func TestWallClock(t *testing.T) {
	sw := New()
	assert.GreaterOrEqual(t, sw.Toc(), time.Duration(0))
}
