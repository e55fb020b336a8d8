package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settle(tick func(float64), seconds float64) {
	const dt = 1.0 / 60
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		tick(dt)
	}
}

var button = Rect{Left: 100, Top: 100, Width: 200, Height: 60}

func TestMagneticAttraction(t *testing.T) {
	m := NewMagnetic()
	m.Enter()
	m.Move(Point{X: 240, Y: 130}, button) // 40px right of center

	tx, ty := m.Target()
	assert.InDelta(t, 40*0.3*0.6, tx, 1e-9)
	assert.InDelta(t, 0, ty, 1e-9)

	settle(m.Tick, 2)
	x, y := m.Offset()
	assert.InDelta(t, tx, x, 0.01)
	assert.InDelta(t, 0, y, 0.01)
	assert.InDelta(t, 1.05, m.Scale(), 0.001)
	assert.Contains(t, m.Transform(), "translate(7.20px")

	t.Run("outside the range keeps the last pull", func(t *testing.T) {
		m.Move(Point{X: 900, Y: 900}, button)
		x2, _ := m.Target()
		assert.Equal(t, tx, x2)
	})

	t.Run("leave springs home", func(t *testing.T) {
		m.Leave()
		settle(m.Tick, 2)
		x, y := m.Offset()
		assert.InDelta(t, 0, x, 0.01)
		assert.InDelta(t, 0, y, 0.01)
		assert.True(t, m.Settled())
	})
}

func TestMagneticSpringIsSmooth(t *testing.T) {
	m := NewMagnetic()
	m.Move(Point{X: 250, Y: 130}, button)
	m.Tick(1.0 / 60)
	x, _ := m.Offset()
	tx, _ := m.Target()
	assert.Greater(t, x, 0.0)
	assert.Less(t, x, tx, "one frame does not reach the target")
}

func TestTiltRotation(t *testing.T) {
	tl := NewTilt()
	tl.Enter()
	tl.Move(Point{X: 300, Y: 160}, button) // bottom-right corner
	settle(tl.Tick, 2)

	rx, ry := tl.Rotation()
	assert.InDelta(t, -10, rx, 0.05)
	assert.InDelta(t, 10, ry, 0.05)
	assert.InDelta(t, 1.05, tl.ScaleValue(), 0.001)

	tl.Leave()
	settle(tl.Tick, 2)
	rx, ry = tl.Rotation()
	assert.InDelta(t, 0, rx, 0.01)
	assert.InDelta(t, 0, ry, 0.01)
	assert.True(t, tl.Settled())
	assert.Contains(t, tl.Transform(), "perspective(1000px)")
}

func TestTiltIgnoresEmptyRect(t *testing.T) {
	tl := NewTilt()
	tl.Move(Point{X: 10, Y: 10}, Rect{})
	settle(tl.Tick, 0.5)
	rx, ry := tl.Rotation()
	assert.Equal(t, 0.0, rx)
	assert.Equal(t, 0.0, ry)
}

func TestInterpolateClamps(t *testing.T) {
	assert.Equal(t, 10.0, interpolate(-3, -0.5, 0.5, 10, -10))
	assert.Equal(t, -10.0, interpolate(3, -0.5, 0.5, 10, -10))
	assert.Equal(t, 0.0, interpolate(0, -0.5, 0.5, 10, -10))
}

func TestTypewriterCycle(t *testing.T) {
	tw := NewTypewriter(DefaultTypewriterConfig("Go", "ML"))
	assert.Equal(t, "", tw.Text())

	tw.Advance(100)
	assert.Equal(t, "G", tw.Text())
	tw.Advance(100)
	assert.Equal(t, "Go", tw.Text())
	tw.Advance(100)
	assert.Equal(t, Pausing, tw.Phase())

	tw.Advance(1999)
	assert.Equal(t, Pausing, tw.Phase())
	tw.Advance(1)
	assert.Equal(t, Deleting, tw.Phase())
	assert.Equal(t, "Go", tw.Text())

	tw.Advance(50)
	assert.Equal(t, "G", tw.Text())
	tw.Advance(50)
	assert.Equal(t, "", tw.Text())
	tw.Advance(50)
	assert.Equal(t, Typing, tw.Phase())
	assert.Equal(t, 1, tw.Index())

	tw.Advance(100)
	assert.Equal(t, "M", tw.Text())
}

func TestTypewriterLoopsAndStops(t *testing.T) {
	looping := NewTypewriter(DefaultTypewriterConfig("ab"))
	looping.Advance(100 * 3)
	looping.Advance(2000 + 50*3)
	assert.Equal(t, Typing, looping.Phase())
	assert.Equal(t, 0, looping.Index())

	cfg := DefaultTypewriterConfig("ab", "cd")
	cfg.Loop = false
	once := NewTypewriter(cfg)
	for i := 0; i < 1000; i++ {
		once.Tick(1.0 / 30)
	}
	assert.Equal(t, Stopped, once.Phase())
	assert.Equal(t, 1, once.Index())
	assert.Equal(t, "", once.Text())

	once.Advance(10000)
	assert.Equal(t, Stopped, once.Phase())
}

func TestTypewriterRunesAndEmpty(t *testing.T) {
	tw := NewTypewriter(DefaultTypewriterConfig("héllo→"))
	tw.Advance(300)
	assert.Equal(t, "hél", tw.Text())

	empty := NewTypewriter(DefaultTypewriterConfig())
	empty.Advance(5000)
	require.Equal(t, Stopped, empty.Phase())
	assert.Equal(t, "", empty.Text())
	assert.Equal(t, "stopped", empty.Phase().String())
}
