package marquee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCapture struct {
	captured map[int]bool
}

func newFakeCapture() *fakeCapture {
	return &fakeCapture{captured: make(map[int]bool)}
}

func (f *fakeCapture) Capture(id int) { f.captured[id] = true }
func (f *fakeCapture) Release(id int) { delete(f.captured, id) }

func newDragFixture(mut func(*Config)) (*Simulator, *DragController, *fakeCapture) {
	cfg := DefaultConfig()
	if mut != nil {
		mut(&cfg)
	}
	sim := NewSimulator(cfg)
	sim.SetSequenceWidth(600)
	capture := newFakeCapture()
	return sim, NewDragController(sim, cfg, capture, false), capture
}

func primary(id int, x, ts float64) PointerEvent {
	return PointerEvent{ID: id, X: x, Primary: true, Time: ts}
}

func TestDragMovesOffset(t *testing.T) {
	sim, d, capture := newDragFixture(nil)
	sim.Tick(0.02)
	start := sim.Offset()

	require.True(t, d.Down(primary(1, 300, 0)))
	assert.True(t, capture.captured[1])
	assert.Equal(t, Dragging, sim.State())
	assert.Equal(t, 0.0, sim.Velocity())

	d.Move(primary(1, 250, 16))
	assert.InDelta(t, start+50, sim.Offset(), 1e-9, "dragging left moves content left")

	d.Move(primary(1, 400, 32))
	assert.InDelta(t, start-100+600, sim.Offset(), 1e-9, "wraps below zero")

	require.True(t, d.Up(primary(1, 400, 48)))
	assert.False(t, capture.captured[1])
	assert.False(t, d.Active())
	assert.Equal(t, 0.0, sim.Velocity())
}

func TestDragSensitivity(t *testing.T) {
	sim, d, _ := newDragFixture(func(c *Config) { c.DragSensitivity = 2.5 })
	d.Down(primary(1, 100, 0))
	d.Move(primary(1, 80, 10))
	assert.InDelta(t, 50, sim.Offset(), 1e-9)
}

func TestDragDeterminism(t *testing.T) {
	xs := []float64{512, 509.5, 490, 471.25, 430, 444, 300.125, 610, 90}
	trace := func() []float64 {
		sim, d, _ := newDragFixture(func(c *Config) { c.DragSensitivity = 1.37 })
		d.Down(primary(3, 520, 0))
		var out []float64
		for i, x := range xs {
			d.Move(primary(3, x, float64(i+1)*16))
			out = append(out, sim.Offset())
		}
		return out
	}
	assert.Equal(t, trace(), trace())
}

func TestDragIgnoresOtherPointers(t *testing.T) {
	sim, d, capture := newDragFixture(nil)
	require.True(t, d.Down(primary(1, 200, 0)))

	assert.False(t, d.Down(primary(2, 50, 5)), "one session at a time")
	assert.False(t, capture.captured[2])

	assert.False(t, d.Move(primary(2, 10, 8)))
	assert.Equal(t, 0.0, sim.Offset())

	assert.False(t, d.Up(primary(2, 10, 9)))
	assert.True(t, d.Active())

	assert.True(t, d.Cancel(primary(1, 200, 20)))
	assert.False(t, d.Active())
}

func TestDragRejectsNonPrimaryAndUnmeasured(t *testing.T) {
	_, d, _ := newDragFixture(nil)
	assert.False(t, d.Down(PointerEvent{ID: 1, X: 10, Primary: false}))

	cfg := DefaultConfig()
	fresh := NewDragController(NewSimulator(cfg), cfg, nil, false)
	assert.False(t, fresh.Down(primary(1, 10, 0)), "no sequence width yet")
}

func TestDragDisabled(t *testing.T) {
	cfg := DefaultConfig()
	sim := NewSimulator(cfg)
	sim.SetSequenceWidth(600)

	mobile := NewDragController(sim, cfg, nil, true)
	assert.False(t, mobile.Enabled())
	assert.False(t, mobile.Down(primary(1, 10, 0)))

	cfg.Draggable = false
	off := NewDragController(sim, cfg, nil, false)
	assert.False(t, off.Down(primary(1, 10, 0)))
}

func TestClickSuppression(t *testing.T) {
	_, d, _ := newDragFixture(nil)

	d.Down(primary(1, 100, 0))
	assert.True(t, d.SuppressClick(1), "clicks during a drag are swallowed")
	d.Move(primary(1, 96.5, 16))
	d.Up(primary(1, 96.5, 32))

	assert.True(t, d.SuppressClick(32))
	assert.True(t, d.SuppressClick(32+249))
	assert.False(t, d.SuppressClick(32+250))
	assert.False(t, d.SuppressClick(1000))

	t.Run("taps do not suppress", func(t *testing.T) {
		_, d, _ := newDragFixture(nil)
		d.Down(primary(1, 100, 0))
		d.Move(primary(1, 102, 16))
		d.Up(primary(1, 102, 32))
		assert.False(t, d.SuppressClick(40))
	})
}

func TestDragReleaseCarriesMomentum(t *testing.T) {
	sim, d, _ := newDragFixture(func(c *Config) { c.StopOnDrag = false })
	d.Down(primary(1, 500, 0))
	for i := 1; i <= 10; i++ {
		d.Move(primary(1, 500-float64(i)*20, float64(i)*16))
	}
	s, ok := d.Session()
	require.True(t, ok)
	assert.Less(t, s.Velocity, 0.0)

	d.Up(primary(1, 300, 176))
	assert.Equal(t, InertiaDecay, sim.State())
	assert.InDelta(t, -s.Velocity, sim.Velocity(), 1e-9, "content keeps moving left")
}

func TestDragReleaseOnUnmount(t *testing.T) {
	sim, d, capture := newDragFixture(nil)
	d.Down(primary(9, 100, 0))
	d.Release()
	assert.False(t, d.Active())
	assert.False(t, capture.captured[9])
	assert.False(t, sim.Dragging())
}
