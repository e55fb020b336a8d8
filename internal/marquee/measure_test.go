package marquee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	container, sequence float64
}

func (f *fakeSurface) ContainerWidth() float64 { return f.container }
func (f *fakeSurface) SequenceWidth() float64  { return f.sequence }

func TestCopyCountCoversContainer(t *testing.T) {
	for _, container := range []float64{0, 1, 320, 767.5, 1280, 3840} {
		for _, seq := range []float64{0.5, 10, 99.9, 400, 1280, 5000} {
			n := CopyCount(container, seq)
			assert.GreaterOrEqual(t, n, MinCopies)
			assert.GreaterOrEqual(t, float64(n)*seq, container+seq,
				"container=%v seq=%v copies=%d", container, seq, n)
		}
	}
	assert.Equal(t, MinCopies, CopyCount(1000, 0))
	assert.Equal(t, 5, CopyCount(1000, 400))
}

func TestMeasurer(t *testing.T) {
	s := &fakeSurface{container: 1000}
	m := NewMeasurer(s)

	t.Run("zero sequence width keeps the previous layout", func(t *testing.T) {
		l, changed := m.Measure()
		assert.False(t, changed)
		assert.Equal(t, Layout{Copies: MinCopies}, l)
	})

	t.Run("measures and rounds up", func(t *testing.T) {
		s.sequence = 399.2
		l, changed := m.Measure()
		assert.True(t, changed)
		assert.Equal(t, Layout{SequenceWidth: 400, Copies: 5}, l)
	})

	t.Run("idempotent", func(t *testing.T) {
		first := m.Layout()
		l, changed := m.Measure()
		assert.False(t, changed)
		assert.Equal(t, first, l)
	})

	t.Run("content removed keeps last valid layout", func(t *testing.T) {
		s.sequence = 0
		l, _ := m.Measure()
		assert.Equal(t, Layout{SequenceWidth: 400, Copies: 5}, l)
	})
}

func TestImageGate(t *testing.T) {
	t.Run("no images fires immediately", func(t *testing.T) {
		calls := 0
		g := NewImageGate(nil, func() { calls++ })
		assert.True(t, g.Ready())
		assert.Equal(t, 1, calls)
	})

	t.Run("fires once every image settled", func(t *testing.T) {
		calls := 0
		g := NewImageGate([]string{"a.png", "b.webp"}, func() { calls++ })
		require.False(t, g.Ready())

		g.Settle("a.png")
		g.Settle("a.png")
		g.Settle("unknown.png")
		assert.Equal(t, 0, calls)
		assert.Equal(t, 1, g.Pending())

		g.Settle("b.webp") // errored images settle too
		assert.Equal(t, 1, calls)
		assert.True(t, g.Ready())
	})
}

func TestWatchFallsBackToPolling(t *testing.T) {
	s := &fakeSurface{container: 800, sequence: 200}
	calls := 0
	disconnect, poller := Watch(nil, s, func() { calls++ })
	require.NotNil(t, poller)
	assert.Equal(t, 1, calls, "measures once immediately")

	poller.Poll()
	assert.Equal(t, 1, calls, "no change, no callback")

	s.container = 1200
	poller.Poll()
	assert.Equal(t, 2, calls)

	disconnect()
	s.container = 400
	poller.Poll()
	assert.Equal(t, 2, calls, "disconnected watches stay quiet")
}

type countingObserver struct {
	observed     int
	disconnected int
}

func (c *countingObserver) Observe(Surface, func()) func() {
	c.observed++
	return func() { c.disconnected++ }
}

func TestWatchUsesHostObserver(t *testing.T) {
	obs := &countingObserver{}
	calls := 0
	disconnect, poller := Watch(obs, &fakeSurface{}, func() { calls++ })
	assert.Nil(t, poller)
	assert.Equal(t, 1, obs.observed)
	assert.Equal(t, 1, calls)
	disconnect()
	assert.Equal(t, 1, obs.disconnected)
}
