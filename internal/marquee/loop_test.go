package marquee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/frame"
)

type recordingPainter struct {
	offsets  []float64
	copies   []int
	dragging bool
}

func (p *recordingPainter) Paint(offset float64) { p.offsets = append(p.offsets, offset) }
func (p *recordingPainter) SetCopies(n int)      { p.copies = append(p.copies, n) }
func (p *recordingPainter) SetDragging(d bool)   { p.dragging = d }

func (p *recordingPainter) lastCopies() int {
	if len(p.copies) == 0 {
		return 0
	}
	return p.copies[len(p.copies)-1]
}

type loopFixture struct {
	surface   *fakeSurface
	sched     *frame.Manual
	painter   *recordingPainter
	capture   *fakeCapture
	loop      *Loop
	frameTime float64
}

func newLoopFixture(images []string, device DeviceHints) *loopFixture {
	f := &loopFixture{
		surface: &fakeSurface{container: 1200, sequence: 450},
		sched:   frame.NewManual(),
		painter: &recordingPainter{},
		capture: newFakeCapture(),
	}
	f.loop = New(DefaultConfig(), Host{
		Surface:   f.surface,
		Scheduler: f.sched,
		Painter:   f.painter,
		Capture:   f.capture,
		Images:    images,
		Device:    device,
	})
	return f
}

func (f *loopFixture) frames(n int) {
	for i := 0; i < n; i++ {
		f.sched.Fire(f.frameTime)
		f.frameTime += 1000.0 / 60
	}
}

func TestLoopMountMeasuresAndAnimates(t *testing.T) {
	f := newLoopFixture(nil, DeviceHints{ViewportWidth: 1440})
	f.loop.Mount()

	assert.Equal(t, Layout{SequenceWidth: 450, Copies: 5}, f.loop.Layout())
	assert.Equal(t, 5, f.painter.lastCopies())
	assert.Equal(t, 1, f.sched.Pending())

	f.frames(120)
	require.NotEmpty(t, f.painter.offsets)
	last := f.painter.offsets[len(f.painter.offsets)-1]
	assert.Greater(t, last, 0.0)
	assert.Less(t, last, 450.0)
	assert.InDelta(t, 120, f.loop.Simulator().Velocity(), 5)
}

func TestLoopPollsWithoutResizeObserver(t *testing.T) {
	f := newLoopFixture(nil, DeviceHints{})
	f.loop.Mount()
	require.NotNil(t, f.loop.Poller())

	f.surface.container = 3000
	f.frames(1)
	assert.Equal(t, 9, f.painter.lastCopies())
}

func TestLoopWaitsForImages(t *testing.T) {
	f := newLoopFixture([]string{"a.webp", "b.png"}, DeviceHints{})
	f.loop.Mount()
	assert.Equal(t, 2, f.loop.ImagesPending())

	// Images finish loading and widen the sequence.
	f.surface.sequence = 900
	f.loop.ImageSettled("a.webp")
	assert.Equal(t, 450.0, f.loop.Layout().SequenceWidth)
	f.loop.ImageSettled("b.png")
	assert.Equal(t, 900.0, f.loop.Layout().SequenceWidth)
	assert.Equal(t, 900.0, f.loop.Simulator().SequenceWidth())
}

func TestLoopHoverAndDrag(t *testing.T) {
	f := newLoopFixture(nil, DeviceHints{ViewportWidth: 1440})
	f.loop.Mount()
	f.frames(30)

	f.loop.PointerEnter()
	assert.Equal(t, HoverPaused, f.loop.Simulator().State())

	require.True(t, f.loop.PointerDown(primary(4, 600, f.frameTime)))
	assert.True(t, f.painter.dragging)
	assert.False(t, f.loop.Simulator().Hovered(), "drag clears hover")

	f.loop.PointerEnter()
	assert.False(t, f.loop.Simulator().Hovered(), "no hover while dragging")

	painted := len(f.painter.offsets)
	f.loop.PointerMove(primary(4, 560, f.frameTime+8))
	assert.Len(t, f.painter.offsets, painted+1, "moves paint immediately")

	f.loop.PointerUp(primary(4, 560, f.frameTime+16))
	assert.False(t, f.painter.dragging)
	assert.True(t, f.loop.Click(f.frameTime+100))
	assert.False(t, f.loop.Click(f.frameTime+400))
}

func TestLoopMobileDisablesDrag(t *testing.T) {
	f := newLoopFixture(nil, DeviceHints{UserAgent: "Mozilla/5.0 (Linux; Android 14)"})
	f.loop.Mount()
	assert.True(t, f.loop.Mobile())
	assert.False(t, f.loop.PointerDown(primary(1, 10, 0)))
	assert.False(t, f.loop.Click(0))
}

func TestLoopUnmount(t *testing.T) {
	f := newLoopFixture(nil, DeviceHints{ViewportWidth: 1440})
	f.loop.Mount()
	f.frames(5)
	f.loop.PointerDown(primary(2, 100, f.frameTime))
	require.True(t, f.capture.captured[2])

	f.loop.Unmount()
	assert.False(t, f.loop.Mounted())
	assert.Equal(t, 0, f.sched.Pending(), "pending frame cancelled")
	assert.False(t, f.capture.captured[2], "pointer capture released")
	assert.False(t, f.painter.dragging)

	painted := len(f.painter.offsets)
	f.frames(10)
	assert.Len(t, f.painter.offsets, painted)
}
